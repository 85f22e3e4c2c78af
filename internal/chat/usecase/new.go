package usecase

import (
	"tastoria/internal/chat/intent"
	"tastoria/pkg/log"
)

type implUseCase struct {
	table intent.Table
	l     log.Logger
}

// New creates a chat UseCase answering from table.
func New(table intent.Table, l log.Logger) *implUseCase {
	return &implUseCase{
		table: table,
		l:     l,
	}
}
