package errors

// ErrorClassification indicates whether an error may succeed if attempted again.
// helm-git itself never retries; the classification is informational for
// callers such as CI wrappers.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry could help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeRemoteUnreachable: ClassificationRetryable,
	CodeCacheUnavailable:  ClassificationRetryable,

	CodeInvalidURIFormat:   ClassificationPermanent,
	CodeDisallowedProtocol: ClassificationPermanent,
	CodeRefNotFound:        ClassificationPermanent,
	CodeEmptyCheckout:      ClassificationPermanent,
	CodeNoChartsFound:      ClassificationPermanent,
	CodeToolFailure:        ClassificationPermanent,
	CodeNotFound:           ClassificationPermanent,
	CodeAlreadyExists:      ClassificationPermanent,
	CodeConflict:           ClassificationPermanent,
	CodeUnauthorized:       ClassificationPermanent,
	CodeInvalidInput:       ClassificationPermanent,
	CodeInvalidConfig:      ClassificationPermanent,
	CodeExecutionFailed:    ClassificationPermanent,
	CodeInternal:           ClassificationPermanent,
	CodeUnknown:            ClassificationPermanent,
}

// genericCodes say where a failure happened rather than what it was.
var genericCodes = map[ErrorCode]bool{
	CodeInternal:        true,
	CodeExecutionFailed: true,
	CodeUnknown:         true,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
