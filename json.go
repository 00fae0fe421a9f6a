package explicon

import (
	"encoding/json"
	"fmt"
)

// envKey is the single key of the tagged Env shape.
const envKey = "env"

// MarshalJSON encodes Env as {"env": NAME} and Value as T's own JSON.
func (s Sourced[T]) MarshalJSON() ([]byte, error) {
	if s.variant == variantEnv {
		return json.Marshal(map[string]string{envKey: s.env})
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON reads {"env": NAME} as Env and anything else as a literal T.
// An object with other keys, or a non-string "env" (null included), is decoded as T.
func (s *Sourced[T]) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil && len(obj) == 1 {
		if raw, ok := obj[envKey]; ok {
			var name *string
			if err := json.Unmarshal(raw, &name); err == nil && name != nil {
				*s = Env[T](*name)
				return nil
			}
		}
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode sourced value: %w", err)
	}
	*s = Value(v)
	return nil
}
