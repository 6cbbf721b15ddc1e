// Package contract exposes the minimal error and outcome interfaces used by other packages.
//
// Implementations must keep these types plain values: reading a field never
// mutates the receiver and never fails.
package contract

// Code is the canonical width of a failure code. Callers usually declare their
// own enumerations and convert them at construction.
type Code uint32

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Keep Code stable for the lifetime of a value (it identifies the failure).
//   - Report the optional annotation with the comma-ok idiom; an empty
//     annotation that was explicitly set is still present.
//   - Return the same text from Error() and Format().
//
// The interface intentionally contains only getters to keep the API surface
// minimal and transport-agnostic.
type Error interface {
	error
	Code() Code
	Message() string
	OptionalMessage() (string, bool)
	Format() string
}
