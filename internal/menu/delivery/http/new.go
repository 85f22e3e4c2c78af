package http

import (
	"tastoria/internal/menu"
	"tastoria/pkg/log"
)

type handler struct {
	l  log.Logger
	uc menu.UseCase
}

// New creates the HTTP handler for the menu domain.
func New(l log.Logger, uc menu.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
