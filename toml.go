package explicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// TOMLDecoder decodes TOML documents containing Sourced fields.
//
// Env must be written as the inline table { env = "NAME" }. go-toml's unmarshaler
// hook never sees standard tables, so a [table] or dotted key landing on a Sourced
// field is reported as an error instead of leaving the zero literal behind.
type TOMLDecoder struct {
	r      io.Reader
	strict bool
}

// NewTOMLDecoder returns a TOMLDecoder reading from r.
func NewTOMLDecoder(r io.Reader) *TOMLDecoder {
	return &TOMLDecoder{r: r}
}

// DisallowUnknownFields makes any document key without a matching field an error,
// as toml.Decoder.DisallowUnknownFields does.
func (d *TOMLDecoder) DisallowUnknownFields() *TOMLDecoder {
	d.strict = true
	return d
}

// Decode reads the whole document into v.
func (d *TOMLDecoder) Decode(v any) error {
	err := toml.NewDecoder(d.r).
		EnableUnmarshalerInterface().
		DisallowUnknownFields().
		Decode(v)

	var missing *toml.StrictMissingError
	if !errors.As(err, &missing) {
		return err
	}

	for _, de := range missing.Errors {
		key := de.Key()
		if n := sourcedKeyDepth(reflect.TypeOf(v), key); n > 0 {
			return fmt.Errorf("decode sourced value %s: env reference must be an inline table { env = \"NAME\" }",
				strings.Join(key[:n], "."))
		}
	}
	if d.strict {
		return err
	}
	return nil
}

// UnmarshalTOML implements unstable.Unmarshaler. It is only called by decoders
// created with NewTOMLDecoder (or with EnableUnmarshalerInterface set).
func (s *Sourced[T]) UnmarshalTOML(node *unstable.Node) error {
	if name, ok := tomlEnvName(node); ok {
		*s = Env[T](name)
		return nil
	}

	var b strings.Builder
	b.WriteString("value = ")
	if err := writeTOMLValue(&b, node); err != nil {
		return fmt.Errorf("decode sourced value: %w", err)
	}

	var doc struct {
		Value T `toml:"value"`
	}
	dec := toml.NewDecoder(strings.NewReader(b.String())).EnableUnmarshalerInterface()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode sourced value: %w", err)
	}
	*s = Value(doc.Value)
	return nil
}

var sourcedType = reflect.TypeOf((*interface{ sourced() })(nil)).Elem()

// sourcedKeyDepth follows key through t the way go-toml matches fields and returns
// how many parts it took to reach a Sourced type, or 0 if it never does.
func sourcedKeyDepth(t reflect.Type, key []string) int {
	for i, part := range key {
		t = indirectTOMLType(t)
		switch t.Kind() {
		case reflect.Struct:
			f, ok := tomlField(t, part)
			if !ok {
				return 0
			}
			t = f.Type
		case reflect.Map:
			t = t.Elem()
		default:
			return 0
		}
		if reflect.PointerTo(indirectTOMLType(t)).Implements(sourcedType) {
			return i + 1
		}
	}
	return 0
}

func indirectTOMLType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t
}

// tomlField matches name against the toml tag or field name, exactly first and
// then case-insensitively. Untagged embedded structs are searched too.
func tomlField(t reflect.Type, name string) (reflect.StructField, bool) {
	var fold reflect.StructField
	found := false
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || (f.Anonymous && f.Tag.Get("toml") == "") {
			continue
		}
		fieldName, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if fieldName == "-" {
			continue
		}
		if fieldName == "" {
			fieldName = f.Name
		}
		if fieldName == name {
			return f, true
		}
		if !found && strings.EqualFold(fieldName, name) {
			fold, found = f, true
		}
	}
	return fold, found
}

func tomlEnvName(node *unstable.Node) (string, bool) {
	if node.Kind != unstable.InlineTable {
		return "", false
	}

	it := node.Children()
	if !it.Next() {
		return "", false
	}
	kv := it.Node()
	if !it.IsLast() {
		return "", false
	}

	keys := kv.Key()
	if !keys.Next() || string(keys.Node().Data) != envKey || !keys.IsLast() {
		return "", false
	}

	val := kv.Value()
	if val.Kind != unstable.String {
		return "", false
	}
	return string(val.Data), true
}

// writeTOMLValue renders a value node back to TOML text so the literal can be
// decoded into T by go-toml itself.
func writeTOMLValue(b *strings.Builder, node *unstable.Node) error {
	switch node.Kind {
	case unstable.String:
		// A JSON string literal is a valid TOML basic string.
		quoted, err := json.Marshal(string(node.Data))
		if err != nil {
			return err
		}
		b.Write(quoted)
	case unstable.Integer, unstable.Float, unstable.Bool,
		unstable.DateTime, unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime:
		b.Write(node.Data)
	case unstable.Array:
		b.WriteByte('[')
		it := node.Children()
		for i := 0; it.Next(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := writeTOMLValue(b, it.Node()); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case unstable.InlineTable:
		b.WriteByte('{')
		it := node.Children()
		for i := 0; it.Next(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			kv := it.Node()
			keys := kv.Key()
			for j := 0; keys.Next(); j++ {
				if j > 0 {
					b.WriteByte('.')
				}
				quoted, err := json.Marshal(string(keys.Node().Data))
				if err != nil {
					return err
				}
				b.Write(quoted)
			}
			b.WriteString(" = ")
			if err := writeTOMLValue(b, kv.Value()); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("unsupported TOML node kind %s", node.Kind)
	}
	return nil
}
