package error

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/next-trace/scg-result/contract"
)

// Code is the canonical error code width.
type Code = contract.Code

// Error is a failure description: a numeric code, a descriptive message and
// an optional annotation.
//
// Error is comparable and safe to copy. Message text is shared between copies,
// never duplicated.
type Error struct {
	code        Code
	message     string
	optional    string
	hasOptional bool
}

// compile-time guarantee that Error implements contract.Error
var _ contract.Error = Error{}

// ------ core constructors

// New creates an Error from any integer code (including caller enumerations
// such as `type MyCode uint16`), normalized to Code.
func New[C constraints.Integer](code C, message string, opts ...Option) Error {
	e := Error{
		code:    Code(code),
		message: message,
	}
	for _, o := range opts {
		o(&e)
	}

	return e
}

// ------ contract.Error getters

func (e Error) Code() Code      { return e.code }
func (e Error) Message() string { return e.message }

// OptionalMessage reports the annotation and whether one is set.
func (e Error) OptionalMessage() (string, bool) { return e.optional, e.hasOptional }

// ------ fluent helpers (chainable, mutate receiver intentionally)

// SetCode replaces the code and returns the same receiver for chaining.
func (e *Error) SetCode(code Code) *Error {
	if e == nil {
		return nil
	}

	e.code = code

	return e
}

// SetMessage replaces the message and returns the same receiver for chaining.
func (e *Error) SetMessage(message string) *Error {
	if e == nil {
		return nil
	}

	e.message = message

	return e
}

// SetOptionalMessage sets the annotation and returns the same receiver for chaining.
func (e *Error) SetOptionalMessage(optional string) *Error {
	if e == nil {
		return nil
	}

	e.optional, e.hasOptional = optional, true

	return e
}

// ClearOptionalMessage removes the annotation and returns the same receiver for chaining.
func (e *Error) ClearOptionalMessage() *Error {
	if e == nil {
		return nil
	}

	e.optional, e.hasOptional = "", false

	return e
}

// ------ copy-with-change

// AddOptionalMessage returns a copy of e whose annotation is replaced by
// optional. Code and message are preserved and e itself is left untouched.
func (e Error) AddOptionalMessage(optional string) Error {
	e.optional, e.hasOptional = optional, true
	return e
}

// WithoutOptionalMessage returns a copy of e with no annotation.
func (e Error) WithoutOptionalMessage() Error {
	e.optional, e.hasOptional = "", false
	return e
}

// ------ formatting and standard error interop

// Format renders
//
//	Error Code: <code>, Error Message: <message>[, Optional Message:<annotation>]
//
// The shape is stable; logs and tests rely on it.
func (e Error) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Error Code: %d, Error Message: %s", e.code, e.message)

	if e.hasOptional {
		b.WriteString(", Optional Message:")
		b.WriteString(e.optional)
	}

	return b.String()
}

func (e Error) String() string { return e.Format() }
func (e Error) Error() string  { return e.Format() }

// Is reports whether target is an Error with the same code and message.
// Annotations are ignored so that an annotated copy still matches the value
// it was derived from.
func (e Error) Is(target error) bool {
	var t Error

	switch v := target.(type) {
	case Error:
		t = v
	case *Error:
		if v == nil {
			return false
		}
		t = *v
	default:
		return false
	}

	return e.code == t.code && e.message == t.message
}

// Equal reports full value equality, annotation included.
func (e Error) Equal(other Error) bool { return e == other }
