package repository

import (
	"context"

	"tastoria/internal/profile"
)

type Repository interface {
	FavoriteRepository
}

type FavoriteRepository interface {
	// AddFavorite is a no-op when the pair already exists.
	AddFavorite(ctx context.Context, opt FavoriteOptions) error
	RemoveFavorite(ctx context.Context, opt FavoriteOptions) error
	ListFavorites(ctx context.Context, userID string) ([]profile.Favorite, error)
}
