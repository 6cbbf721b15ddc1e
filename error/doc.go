// Package error provides a plain value error type identified by a numeric code.
//
// It exposes a single concrete type Error that implements contract.Error and
// the built-in error interface, so it can travel through ordinary Go error
// returns as well as inside result.Result.
//
// Key characteristics:
//   - Numeric Code normalized to a fixed width; any integer enumeration is accepted
//   - Static, descriptive Message
//   - One optional free-text annotation for call-site context
//   - Copy-with-change helpers that never touch the receiver
//   - A fixed, log-friendly Format shape
//
// Errors are usually declared once as package-level values and annotated where
// they are returned:
//
//	var ErrNotFound = error.New(10404, "record not found")
//
//	return ErrNotFound.AddOptionalMessage("id=42")
package error
