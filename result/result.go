package result

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-result/contract"
	apiError "github.com/next-trace/scg-result/error"
)

// Void is the placeholder payload for operations that succeed without a value.
type Void struct{}

var (
	// ErrNotOk is wrapped by the panic value of Unwrap on a non-success Result.
	ErrNotOk = errors.New("result: unwrap on a result that is not ok")
	// ErrNotErr is wrapped by the panic value of UnwrapErr on a non-failure Result.
	ErrNotErr = errors.New("result: unwrap_err on a result that is not an error")
)

// Result holds either a success payload of type T or a failure of type E.
//
// The success payload is shared: copying a Result copies a pointer, so every
// copy observes the same value. The payload must be treated as read-only.
//
// The zero value is undefined; use the factories.
type Result[T, E any] struct {
	body   *T
	err    E
	status Status
}

// Of is a Result whose failure type is apiError.Error.
type Of[T any] = Result[T, apiError.Error]

// compile-time guarantee that Result implements contract.Outcome
var _ contract.Outcome = Result[Void, apiError.Error]{}

// ------ success factories

// New is the default constructor: a success holding T's zero value.
func New[T, E any]() Result[T, E] { return MakeOk[T, E]() }

// MakeOk returns a success holding T's zero value (Void{} for Result[Void, E]).
func MakeOk[T, E any]() Result[T, E] {
	var v T
	return MakeOkWith[T, E](v)
}

// MakeOkWith returns a success holding value.
func MakeOkWith[T, E any](value T) Result[T, E] {
	validate[T, E]()

	return Result[T, E]{body: &value, status: StatusOk}
}

// MakeOkFrom returns a success holding the value built by ctor.
func MakeOkFrom[T, E any](ctor func() T) Result[T, E] {
	return MakeOkWith[T, E](ctor())
}

// MakeOkFrom1 forwards a to the payload constructor ctor.
func MakeOkFrom1[T, E, A any](ctor func(A) T, a A) Result[T, E] {
	return MakeOkWith[T, E](ctor(a))
}

// MakeOkFrom2 forwards a and b to the payload constructor ctor, e.g.
//
//	MakeOkFrom2[string, apiError.Error](repeat, 6, 'a')
func MakeOkFrom2[T, E, A, B any](ctor func(A, B) T, a A, b B) Result[T, E] {
	return MakeOkWith[T, E](ctor(a, b))
}

// Ok returns a success with the default error type.
func Ok[T any](value T) Of[T] { return MakeOkWith[T, apiError.Error](value) }

// ------ failure factories

// MakeErr returns a failure holding E's zero value.
func MakeErr[T, E any]() Result[T, E] {
	var e E
	return MakeErrWith[T, E](e)
}

// MakeErrWith returns a failure holding e.
func MakeErrWith[T, E any](e E) Result[T, E] {
	validate[T, E]()

	return Result[T, E]{err: e, status: StatusErr}
}

// MakeErrFrom returns a failure holding the value built by ctor.
func MakeErrFrom[T, E any](ctor func() E) Result[T, E] {
	return MakeErrWith[T, E](ctor())
}

// MakeErrFrom1 forwards a to the error constructor ctor.
func MakeErrFrom1[T, E, A any](ctor func(A) E, a A) Result[T, E] {
	return MakeErrWith[T, E](ctor(a))
}

// MakeErrFrom2 forwards a and b to the error constructor ctor.
func MakeErrFrom2[T, E, A, B any](ctor func(A, B) E, a A, b B) Result[T, E] {
	return MakeErrWith[T, E](ctor(a, b))
}

// Err returns a failure with the default error type.
func Err[T any](e apiError.Error) Of[T] { return MakeErrWith[T](e) }

// ------ state queries

func (r Result[T, E]) Status() Status    { return r.status }
func (r Result[T, E]) IsOk() bool        { return r.status == StatusOk }
func (r Result[T, E]) IsErr() bool       { return r.status == StatusErr }
func (r Result[T, E]) IsUndefined() bool { return r.status == StatusUndefined }

// ------ checked accessors

// Ok returns a copy of the payload and true, or T's zero value and false when
// r is not a success.
func (r Result[T, E]) Ok() (T, bool) {
	if r.status != StatusOk {
		var zero T
		return zero, false
	}

	return *r.body, true
}

// SharedOk returns the shared payload, or nil when r is not a success. Every
// copy of r returns the same pointer. Callers must not write through it.
func (r Result[T, E]) SharedOk() *T {
	if r.status != StatusOk {
		return nil
	}

	return r.body
}

// Err returns the failure and true, or E's zero value and false when r is not
// a failure.
func (r Result[T, E]) Err() (E, bool) {
	if r.status != StatusErr {
		var zero E
		return zero, false
	}

	return r.err, true
}

// ------ unchecked accessors

// Unwrap returns a copy of the payload.
//
// Precondition: r.IsOk(). Otherwise Unwrap panics with an error wrapping
// ErrNotOk; a caller reaching that panic has a bug and should not recover it.
func (r Result[T, E]) Unwrap() T {
	if r.status != StatusOk {
		panic(fmt.Errorf("%w (status %s)", ErrNotOk, r.status))
	}

	return *r.body
}

// UnwrapErr returns the failure.
//
// Precondition: r.IsErr(). Otherwise UnwrapErr panics with an error wrapping
// ErrNotErr.
func (r Result[T, E]) UnwrapErr() E {
	if r.status != StatusErr {
		panic(fmt.Errorf("%w (status %s)", ErrNotErr, r.status))
	}

	return r.err
}

// String renders Ok(<payload>), Err(<error>) or Undefined.
func (r Result[T, E]) String() string {
	switch r.status {
	case StatusOk:
		return fmt.Sprintf("Ok(%v)", *r.body)
	case StatusErr:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return "Undefined"
	}
}
