package http

import (
	"tastoria/internal/booking"
	"tastoria/pkg/log"
	"tastoria/pkg/validation"
)

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates the HTTP handler for slot and booking routes.
func New(l log.Logger, uc booking.UseCase) *handler {
	validation.Register()
	return &handler{
		l:  l,
		uc: uc,
	}
}
