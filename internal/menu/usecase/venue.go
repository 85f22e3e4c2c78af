package usecase

import (
	"context"

	"tastoria/internal/menu"
)

func (uc *implUseCase) Venues(ctx context.Context) []menu.Venue {
	return menu.Venues()
}
