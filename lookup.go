package explicon

import (
	"os"
	"unicode/utf8"
)

// LookupFunc retrieves a variable by exact name. It has the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// MapLookup returns a LookupFunc backed by m.
// Useful for testing without touching the process environment.
func MapLookup(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// Option configures a resolution call.
type Option func(*resolveConfig)

type resolveConfig struct {
	lookup LookupFunc
}

// WithLookup replaces os.LookupEnv as the variable lookup. A nil fn is ignored.
func WithLookup(fn LookupFunc) Option {
	return func(cfg *resolveConfig) {
		if fn != nil {
			cfg.lookup = fn
		}
	}
}

func newResolveConfig(opts []Option) resolveConfig {
	cfg := resolveConfig{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// readVar performs exactly one lookup.
func (c resolveConfig) readVar(name string) (string, error) {
	v, ok := c.lookup(name)
	if !ok {
		return "", lookupError(name, ErrNotPresent)
	}
	if !utf8.ValidString(v) {
		return "", lookupError(name, ErrNotUnicode)
	}
	return v, nil
}
