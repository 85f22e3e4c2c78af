package booking

import (
	"context"

	"tastoria/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Slots(ctx context.Context, input SlotsInput) ([]Slot, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Booking, error)
	ListMine(ctx context.Context, sc model.Scope) ([]Booking, error)
}
