package explicon

import (
	"encoding"
	"reflect"
	"strconv"
	"time"
)

// Parseable is the set of types Resolve can parse from environment text.
// Named types implementing encoding.TextUnmarshaler on their pointer are parsed with it;
// time.Duration uses time.ParseDuration; everything else uses strconv.
type Parseable interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// StringConstructible is the set of types built directly from environment text.
// Conversion cannot fail.
type StringConstructible interface {
	~string | ~[]byte
}

// ResolveFunc returns the literal for Value, or looks up the variable for Env and
// converts its text with parse. A parse error is reported with KindOther.
func (s Sourced[T]) ResolveFunc(parse func(string) (T, error), opts ...Option) (T, error) {
	if s.variant == variantValue {
		return s.value, nil
	}

	cfg := newResolveConfig(opts)
	text, err := cfg.readVar(s.env)
	if err != nil {
		var zero T
		return zero, err
	}

	v, err := parse(text)
	if err != nil {
		var zero T
		return zero, parseError(s.env, err)
	}
	return v, nil
}

// ResolveFuncOr is ResolveFunc with any failure replaced by fallback.
func (s Sourced[T]) ResolveFuncOr(parse func(string) (T, error), fallback T, opts ...Option) T {
	v, err := s.ResolveFunc(parse, opts...)
	return or(v, err, fallback)
}

// ResolveFuncAndValidate is ResolveAndValidate built on ResolveFunc.
func (s Sourced[T]) ResolveFuncAndValidate(parse func(string) (T, error), pred func(T) bool, opts ...Option) (T, error) {
	v, err := s.ResolveFunc(parse, opts...)
	return validate(s, v, err, pred)
}

// TextUnmarshalerPtr is satisfied by *T when T implements encoding.TextUnmarshaler
// on its pointer, e.g. *netip.Addr or *big.Int.
type TextUnmarshalerPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// ResolveText returns the literal, or the environment text decoded with T's
// UnmarshalText. Use it for struct types outside Parseable.
//
//	addr, err := explicon.ResolveText(cfg.ListenAddr) // Sourced[netip.Addr]
func ResolveText[T any, PT TextUnmarshalerPtr[T]](s Sourced[T], opts ...Option) (T, error) {
	return s.ResolveFunc(unmarshalText[T, PT], opts...)
}

// ResolveTextOrDefault is ResolveText with any failure replaced by T's zero value.
// The returned error is always nil.
func ResolveTextOrDefault[T any, PT TextUnmarshalerPtr[T]](s Sourced[T], opts ...Option) (T, error) {
	var zero T
	return ResolveTextOr[T, PT](s, zero, opts...), nil
}

// ResolveTextOr is ResolveText with any failure replaced by fallback.
func ResolveTextOr[T any, PT TextUnmarshalerPtr[T]](s Sourced[T], fallback T, opts ...Option) T {
	return s.ResolveFuncOr(unmarshalText[T, PT], fallback, opts...)
}

// ResolveTextAndValidate is ResolveAndValidate built on ResolveText.
func ResolveTextAndValidate[T any, PT TextUnmarshalerPtr[T]](s Sourced[T], pred func(T) bool, opts ...Option) (T, error) {
	return s.ResolveFuncAndValidate(unmarshalText[T, PT], pred, opts...)
}

// Resolve returns the literal, or the parsed value of the environment variable.
//
// Errors: KindVarLookupFailed when the variable is unset or not valid UTF-8,
// KindOther when its text does not parse as T.
func Resolve[T Parseable](s Sourced[T], opts ...Option) (T, error) {
	return s.ResolveFunc(parseText[T], opts...)
}

// ResolveOrDefault is Resolve with any failure replaced by T's zero value.
// The returned error is always nil.
func ResolveOrDefault[T Parseable](s Sourced[T], opts ...Option) (T, error) {
	var zero T
	return ResolveOr(s, zero, opts...), nil
}

// ResolveOr is Resolve with any failure replaced by fallback.
func ResolveOr[T Parseable](s Sourced[T], fallback T, opts ...Option) T {
	v, err := Resolve(s, opts...)
	return or(v, err, fallback)
}

// ResolveAndValidate resolves s and checks the result with pred.
// Resolution errors are returned unchanged; a rejected value yields KindOther
// with the message "Validation failed".
func ResolveAndValidate[T Parseable](s Sourced[T], pred func(T) bool, opts ...Option) (T, error) {
	v, err := Resolve(s, opts...)
	return validate(s, v, err, pred)
}

// ResolveFromString returns the literal, or the environment text converted to T.
// Only KindVarLookupFailed can be returned.
func ResolveFromString[T StringConstructible](s Sourced[T], opts ...Option) (T, error) {
	return s.ResolveFunc(fromString[T], opts...)
}

// ResolveFromStringOr is ResolveFromString with any failure replaced by fallback.
func ResolveFromStringOr[T StringConstructible](s Sourced[T], fallback T, opts ...Option) T {
	v, err := ResolveFromString(s, opts...)
	return or(v, err, fallback)
}

// ResolveFromStringAndValidate is ResolveAndValidate built on ResolveFromString.
func ResolveFromStringAndValidate[T StringConstructible](s Sourced[T], pred func(T) bool, opts ...Option) (T, error) {
	v, err := ResolveFromString(s, opts...)
	return validate(s, v, err, pred)
}

func or[T any](v T, err error, fallback T) T {
	if err != nil {
		return fallback
	}
	return v
}

func validate[T any](s Sourced[T], v T, err error, pred func(T) bool) (T, error) {
	if err != nil {
		return v, err
	}
	if !pred(v) {
		var zero T
		return zero, validationError(s.env)
	}
	return v, nil
}

func fromString[T StringConstructible](text string) (T, error) {
	return T(text), nil
}

func unmarshalText[T any, PT TextUnmarshalerPtr[T]](text string) (T, error) {
	var v T
	err := PT(&v).UnmarshalText([]byte(text))
	return v, err
}

var durationType = reflect.TypeOf(time.Duration(0))

func parseText[T Parseable](text string) (T, error) {
	var v T
	if u, ok := any(&v).(encoding.TextUnmarshaler); ok {
		err := u.UnmarshalText([]byte(text))
		return v, err
	}

	rv := reflect.ValueOf(&v).Elem()
	if rv.Type() == durationType {
		d, err := time.ParseDuration(text)
		if err != nil {
			return v, err
		}
		rv.SetInt(int64(d))
		return v, nil
	}

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return v, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	}
	return v, nil
}
