// Package result provides Result, a closed two-variant outcome: success with a
// value of type T, or failure with a value of type E.
//
// Results are built only through the MakeOk* and MakeErr* factories (or Ok and
// Err for the default error type). Callers query the state before extracting,
// or use the unchecked Unwrap/UnwrapErr where the other state is a programming
// error at that call site.
//
// Copies of a success Result share one payload; see SharedOk.
//
// Instantiation rules, checked on first construction of each Result[T, E]:
//   - T and E must be different types
//   - E must be a concrete value type: not an interface, pointer, func, chan or
//     zero-size type, so every failure carries a real error value
//
// Use Void as T for operations that produce no payload.
package result
