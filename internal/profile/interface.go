package profile

import (
	"context"

	"tastoria/internal/model"
	"tastoria/internal/user"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Me(ctx context.Context, sc model.Scope) (user.User, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (user.User, error)
	Delete(ctx context.Context, sc model.Scope) error

	ListFavorites(ctx context.Context, sc model.Scope) ([]Favorite, error)
	AddFavorite(ctx context.Context, sc model.Scope, itemID string) (Favorite, error)
	RemoveFavorite(ctx context.Context, sc model.Scope, itemID string) error
}
