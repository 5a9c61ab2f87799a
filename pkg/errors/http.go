package errors

import (
	"net/http"
	"strings"
)

// HTTPError is an error that already knows how it is presented to clients.
// Details, when set, is rendered as a list instead of Message.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *HTTPError) Error() string {
	if len(e.Details) > 0 {
		return strings.Join(e.Details, "; ")
	}
	return e.Message
}

// NewHTTPError returns an HTTPError with a single message.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg}
}

// NewValidationHTTPError returns a 400 carrying one entry per violated constraint.
func NewValidationHTTPError(details ...string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    "validation failed",
		Details:    details,
	}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "Forbidden")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
