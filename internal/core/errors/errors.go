package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidJsonError   = "invalid_json"
	HttpValidationError    = "validation_failed"
	HttpNotFoundError      = "not_found"
	HttpDuplicateError     = "duplicate_conversation"
	HttpConflictError      = "conflict"
	HttpMetricsFailedError = "metrics_unavailable"
)

// ErrorResponse is the error response body for API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
