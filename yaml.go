package explicon

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes Env as a mapping with the single key "env" and Value as T.
func (s Sourced[T]) MarshalYAML() (any, error) {
	if s.variant == variantEnv {
		return map[string]string{envKey: s.env}, nil
	}
	return s.value, nil
}

// UnmarshalYAML reads a mapping with the single string key "env" as Env and
// anything else as a literal T. Aliases are followed.
func (s *Sourced[T]) UnmarshalYAML(node *yaml.Node) error {
	if name, ok := yamlEnvName(node); ok {
		*s = Env[T](name)
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("decode sourced value: %w", err)
	}
	*s = Value(v)
	return nil
}

func yamlEnvName(node *yaml.Node) (string, bool) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return "", false
	}

	key, val := node.Content[0], node.Content[1]
	for val.Kind == yaml.AliasNode && val.Alias != nil {
		val = val.Alias
	}
	if key.Kind != yaml.ScalarNode || key.Value != envKey {
		return "", false
	}
	if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!str" {
		return "", false
	}
	return val.Value, true
}
