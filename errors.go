package explicon

import (
	"errors"
	"fmt"
)

// Kind classifies resolution failures.
type Kind uint8

const (
	// KindVarLookupFailed means the environment variable could not be retrieved.
	KindVarLookupFailed Kind = iota + 1
	// KindOther covers parse failures and rejected validation.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindVarLookupFailed:
		return "var_lookup_failed"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Error codes distinguishing the reason within a Kind.
const (
	ErrCodeNotPresent = "not_present" // KindVarLookupFailed
	ErrCodeNotUnicode = "not_unicode" // KindVarLookupFailed
	ErrCodeParse      = "parse"       // KindOther
	ErrCodeValidation = "validation"  // KindOther
)

var (
	// ErrNotPresent is wrapped when the environment variable is not set.
	ErrNotPresent = errors.New("environment variable not found")

	// ErrNotUnicode is wrapped when the variable's value is not valid UTF-8.
	ErrNotUnicode = errors.New("environment variable was not valid unicode")

	// ErrValidationFailed is wrapped when a validation predicate rejects a value.
	ErrValidationFailed = errors.New("validation failed")
)

// validationMessage is the exact text Error reports for a rejected value.
const validationMessage = "Validation failed"

// Error is returned by every resolution function.
type Error struct {
	Kind    Kind
	Code    string // Reason (e.g., "not_present", "parse")
	Var     string // Environment variable name, empty for Value resolution
	Message string // Human-readable description
	Err     error  // Underlying cause
}

// Error formats the failure. Lookup failures name the variable; Other returns Message as is.
func (e *Error) Error() string {
	if e.Kind == KindVarLookupFailed {
		return fmt.Sprintf("error while resolving env var %s: %s", e.Var, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsVarLookupFailed reports whether err is a lookup failure.
func IsVarLookupFailed(err error) bool {
	return kindOf(err) == KindVarLookupFailed
}

// IsOther reports whether err is a parse or validation failure.
func IsOther(err error) bool {
	return kindOf(err) == KindOther
}

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func lookupError(name string, cause error) *Error {
	code := ErrCodeNotPresent
	if errors.Is(cause, ErrNotUnicode) {
		code = ErrCodeNotUnicode
	}
	return &Error{
		Kind:    KindVarLookupFailed,
		Code:    code,
		Var:     name,
		Message: cause.Error(),
		Err:     cause,
	}
}

func parseError(name string, cause error) *Error {
	return &Error{
		Kind:    KindOther,
		Code:    ErrCodeParse,
		Var:     name,
		Message: cause.Error(),
		Err:     cause,
	}
}

func validationError(name string) *Error {
	return &Error{
		Kind:    KindOther,
		Code:    ErrCodeValidation,
		Var:     name,
		Message: validationMessage,
		Err:     ErrValidationFailed,
	}
}
