package error

// Option configures an Error during construction via New().
type Option func(*Error)

// WithOptionalMessage sets the annotation during New() construction.
func WithOptionalMessage(optional string) Option {
	return func(e *Error) { e.optional, e.hasOptional = optional, true }
}
