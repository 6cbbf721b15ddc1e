package contract

// Outcome is the state-query surface shared by every result instantiation.
//
// Exactly one of IsOk, IsErr and IsUndefined reports true. IsUndefined is a
// defensive query for values that skipped construction.
type Outcome interface {
	IsOk() bool
	IsErr() bool
	IsUndefined() bool
}
