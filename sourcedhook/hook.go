package sourcedhook

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Options configures how literal values are decoded into their target type.
type Options struct {
	// TagName is the struct tag read for literal structs. Default: "mapstructure".
	TagName string

	// WeaklyTypedInput allows "8080" to decode into an int and similar coercions.
	WeaklyTypedInput bool
}

// rawDecoder is implemented by *explicon.Sourced[T] for every T.
type rawDecoder interface {
	DecodeRaw(raw any, decode func(in, out any) error) error
}

// DecodeHook returns a hook that builds explicon.Sourced values from generic data.
// Other target types pass through untouched, so it composes with other hooks.
func DecodeHook(opts Options) mapstructure.DecodeHookFuncType {
	var hook mapstructure.DecodeHookFuncType
	hook = func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f == t || t.Kind() != reflect.Struct {
			return data, nil
		}

		target := reflect.New(t)
		dec, ok := target.Interface().(rawDecoder)
		if !ok {
			return data, nil
		}

		err := dec.DecodeRaw(data, func(in, out any) error {
			return decode(in, out, hook, opts)
		})
		if err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	}
	return hook
}

// Decode decodes input into output with DecodeHook installed.
func Decode(input, output any, opts Options) error {
	return decode(input, output, DecodeHook(opts), opts)
}

func decode(in, out any, hook mapstructure.DecodeHookFuncType, opts Options) error {
	tagName := opts.TagName
	if tagName == "" {
		tagName = "mapstructure"
	}

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          tagName,
		Result:           out,
		WeaklyTypedInput: opts.WeaklyTypedInput,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			hook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return d.Decode(in)
}
