package http

import (
	"tastoria/internal/profile"
	"tastoria/pkg/log"
	"tastoria/pkg/validation"
)

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New creates the HTTP handler for profile routes.
func New(l log.Logger, uc profile.UseCase) *handler {
	validation.Register()
	return &handler{
		l:  l,
		uc: uc,
	}
}
