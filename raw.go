package explicon

// DecodeRaw sets s from generic data such as the map[string]any trees produced by
// decoding into any. A map holding only the string key "env" becomes Env; anything
// else is handed to decode, which must fill out (a *T) from in.
func (s *Sourced[T]) DecodeRaw(raw any, decode func(in, out any) error) error {
	if name, ok := rawEnvName(raw); ok {
		*s = Env[T](name)
		return nil
	}

	var v T
	if err := decode(raw, &v); err != nil {
		return err
	}
	*s = Value(v)
	return nil
}

func rawEnvName(raw any) (string, bool) {
	var val any
	switch m := raw.(type) {
	case map[string]any:
		if len(m) != 1 {
			return "", false
		}
		val = m[envKey]
	case map[any]any:
		if len(m) != 1 {
			return "", false
		}
		val = m[envKey]
	case map[string]string:
		if len(m) != 1 {
			return "", false
		}
		name, ok := m[envKey]
		return name, ok
	default:
		return "", false
	}

	name, ok := val.(string)
	return name, ok
}
