package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be served with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Common HTTP errors.
var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// NewValidationError wraps a binding/validation failure as a 400.
func NewValidationError(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
}

// StatusOf returns the HTTP status carried by err, or 400 when err is not an HTTPError.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusBadRequest
}
