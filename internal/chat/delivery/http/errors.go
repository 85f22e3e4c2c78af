package http

import (
	"errors"
	"net/http"

	"tastoria/internal/chat"
)

const (
	msgEmptyInput    = "Message cannot be empty"
	msgMalformedBody = "Invalid request body"
	msgInternal      = "Sorry, there was an error processing your request."
)

var (
	errMalformedBody = errors.New("malformed request body")
	errMessageType   = errors.New("message is not a string")
)

// mapError returns the status and client message for err. Unknown errors are 500.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		return http.StatusBadRequest, msgEmptyInput
	case errors.Is(err, errMalformedBody):
		return http.StatusBadRequest, msgMalformedBody
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
