package explicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourced_Variants(t *testing.T) {
	env := Env[int]("PORT")
	assert.True(t, env.IsEnv())
	name, ok := env.EnvName()
	assert.True(t, ok)
	assert.Equal(t, "PORT", name)
	_, ok = env.Literal()
	assert.False(t, ok)

	val := Value(8080)
	assert.False(t, val.IsEnv())
	_, ok = val.EnvName()
	assert.False(t, ok)
	v, ok := val.Literal()
	assert.True(t, ok)
	assert.Equal(t, 8080, v)
}

func TestSourced_ZeroValue(t *testing.T) {
	var s Sourced[string]
	assert.False(t, s.IsEnv())

	v, ok := s.Literal()
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestSourced_EnvNameNotValidated(t *testing.T) {
	s := Env[string]("")
	name, ok := s.EnvName()
	assert.True(t, ok)
	assert.Equal(t, "", name)
}

func TestSourced_String(t *testing.T) {
	assert.Equal(t, "env:DB_PASSWORD", Env[string]("DB_PASSWORD").String())
	assert.Equal(t, "42", Value(42).String())
	assert.Equal(t, "[a b]", Value([]string{"a", "b"}).String())
}

func TestSourced_Raw(t *testing.T) {
	assert.Equal(t, map[string]any{"env": "X"}, Env[int]("X").Raw())
	assert.Equal(t, 3, Value(3).Raw())
}
