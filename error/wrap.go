package error

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Wrap builds an Error whose annotation is the text of cause. If cause is nil,
// no annotation is set.
//
// Only the cause's text is kept; the returned Error does not unwrap to it.
func Wrap[C constraints.Integer](cause error, code C, message string) Error {
	e := New(code, message)
	if cause != nil {
		e.optional, e.hasOptional = cause.Error(), true
	}

	return e
}

// Ensure finds an Error in err's chain.
//
// Behavior:
//   - nil input => zero Error, false
//   - an Error or non-nil *Error anywhere in the chain => that value, true
//   - otherwise => zero Error, false
func Ensure(err error) (Error, bool) {
	if err == nil {
		return Error{}, false
	}

	var e Error
	if errors.As(err, &e) {
		return e, true
	}

	var p *Error
	if errors.As(err, &p) && p != nil {
		return *p, true
	}

	return Error{}, false
}
