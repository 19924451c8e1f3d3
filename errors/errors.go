package errors

// PlatformError extends the standard error interface with structured information.
//
// The code identifies the failing stage, the classification tells callers
// whether the condition may be transient, and the context holds the values
// (ref, path, URL, step) that make a diagnostic actionable.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	Unwrap() error
}
