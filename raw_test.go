package explicon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourced_DecodeRaw(t *testing.T) {
	assign := func(in, out any) error {
		p, ok := out.(*int)
		if !ok {
			return errors.New("unexpected target")
		}
		n, ok := in.(int)
		if !ok {
			return errors.New("not an int")
		}
		*p = n
		return nil
	}

	tests := []struct {
		name    string
		raw     any
		want    Sourced[int]
		wantErr bool
	}{
		{name: "literal", raw: 5, want: Value(5)},
		{name: "string map", raw: map[string]any{"env": "PORT"}, want: Env[int]("PORT")},
		{name: "any map", raw: map[any]any{"env": "PORT"}, want: Env[int]("PORT")},
		{name: "string-string map", raw: map[string]string{"env": "PORT"}, want: Env[int]("PORT")},
		{name: "extra key", raw: map[string]any{"env": "PORT", "x": 1}, wantErr: true},
		{name: "non-string env", raw: map[string]any{"env": 1}, wantErr: true},
		{name: "decode failure", raw: "five", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Sourced[int]
			err := s.DecodeRaw(tt.raw, assign)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}
