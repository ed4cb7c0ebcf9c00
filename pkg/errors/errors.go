package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery layers translate domain errors into these via mapError.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Common HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
)
