package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// The classification follows code, except for the generic codes INTERNAL_ERROR,
// EXECUTION_FAILED and UNKNOWN, which keep the classification of a
// PlatformError already in err's chain. Returns nil if err is nil.
//
// Example:
//
//	if err := repo.AddRemote(opts); err != nil {
//	    return errors.Wrap(err, errors.CodeCacheUnavailable, "failed to register mirror remote")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in one step.
// The context map is copied. Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeToolFailure, "helm package failed",
//	    map[string]interface{}{"step": "package", "chart": dir})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if genericCodes[code] && errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
