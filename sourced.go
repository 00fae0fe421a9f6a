package explicon

import "fmt"

type variant uint8

const (
	variantValue variant = iota
	variantEnv
)

// Sourced holds a configuration value that is either given directly or read from
// an environment variable at resolution time.
// The zero value is Value of T's zero value.
type Sourced[T any] struct {
	variant variant
	env     string
	value   T
}

// Env returns a Sourced that reads the named environment variable when resolved.
// The name is not validated.
func Env[T any](name string) Sourced[T] {
	return Sourced[T]{variant: variantEnv, env: name}
}

// Value returns a Sourced holding v directly.
func Value[T any](v T) Sourced[T] {
	return Sourced[T]{variant: variantValue, value: v}
}

// IsEnv reports whether s refers to an environment variable.
func (s Sourced[T]) IsEnv() bool {
	return s.variant == variantEnv
}

// EnvName returns the environment variable name and true for the Env variant.
func (s Sourced[T]) EnvName() (string, bool) {
	if s.variant != variantEnv {
		return "", false
	}
	return s.env, true
}

// Literal returns the held value and true for the Value variant.
func (s Sourced[T]) Literal() (T, bool) {
	if s.variant != variantValue {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Raw returns the generic form s encodes to: {"env": NAME} for Env, the literal otherwise.
// Useful for encoders that have no marshaler hook (e.g. TOML).
func (s Sourced[T]) Raw() any {
	if s.variant == variantEnv {
		return map[string]any{envKey: s.env}
	}
	return s.value
}

// String renders "env:NAME" or the literal formatted with %v.
func (s Sourced[T]) String() string {
	if s.variant == variantEnv {
		return "env:" + s.env
	}
	return fmt.Sprintf("%v", s.value)
}

// sourced marks *Sourced[T] for codecs that inspect types by reflection.
func (s *Sourced[T]) sourced() {}
