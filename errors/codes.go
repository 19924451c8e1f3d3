package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based so they read well in single-line diagnostics.
type ErrorCode string

const (
	// Request errors.

	// CodeInvalidURIFormat indicates the request URI is not a git+ URI or is malformed.
	CodeInvalidURIFormat ErrorCode = "INVALID_URI_FORMAT"

	// CodeDisallowedProtocol indicates the URI transport is not on the allow-list.
	CodeDisallowedProtocol ErrorCode = "DISALLOWED_PROTOCOL"

	// Repository errors.

	// CodeRemoteUnreachable indicates the remote could not be fetched from.
	CodeRemoteUnreachable ErrorCode = "REMOTE_UNREACHABLE"

	// CodeRefNotFound indicates the requested ref could not be fetched or checked out.
	CodeRefNotFound ErrorCode = "REF_NOT_FOUND"

	// CodeEmptyCheckout indicates the checkout succeeded but produced no files.
	CodeEmptyCheckout ErrorCode = "EMPTY_CHECKOUT"

	// Chart errors.

	// CodeNoChartsFound indicates no chart definition was discovered in the checkout.
	CodeNoChartsFound ErrorCode = "NO_CHARTS_FOUND"

	// CodeToolFailure indicates the packaging tool failed; the "step" context
	// names the operation (inspect, dependency, package, index).
	CodeToolFailure ErrorCode = "TOOL_FAILURE"

	// Cache errors.

	// CodeCacheUnavailable indicates an optional cache could not be used.
	CodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	// Generic errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict indicates a resource state conflict that prevents the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// CodeUnauthorized indicates missing or rejected credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeExecutionFailed indicates an external command failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
