package backend

import "fmt"

// User-facing messages for classified backend failures. These strings are
// part of the contract with the front end and are surfaced verbatim.
const (
	MsgValidationError = "Form Upload Failed with validation error from Backend"
	MsgBackendError    = "Something went wrong in Backend"
	MsgUnexpectedError = "An unexpected error occurred"
)

// APIError is a non-2xx answer from the content backend, classified into one
// of the three fixed messages. The original status code is kept for
// diagnostics.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// NewAPIError classifies an HTTP status code: 400 is a backend validation
// failure, anything 500 and above is a backend failure, everything else gets
// the generic message.
func NewAPIError(statusCode int) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    messageForStatus(statusCode),
	}
}

func messageForStatus(statusCode int) string {
	if statusCode == 400 {
		return MsgValidationError
	}
	if statusCode >= 500 {
		return MsgBackendError
	}
	return MsgUnexpectedError
}
