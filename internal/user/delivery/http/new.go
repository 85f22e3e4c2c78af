package http

import (
	"tastoria/internal/user"
	"tastoria/pkg/log"
	"tastoria/pkg/validation"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates the HTTP handler for account routes.
func New(l log.Logger, uc user.UseCase) *handler {
	validation.Register()
	return &handler{
		l:  l,
		uc: uc,
	}
}
