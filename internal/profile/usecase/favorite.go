package usecase

import (
	"context"

	menuRepo "tastoria/internal/menu/repository"
	"tastoria/internal/model"
	"tastoria/internal/profile"
	repo "tastoria/internal/profile/repository"

	"github.com/google/uuid"
)

func (uc *implUseCase) ListFavorites(ctx context.Context, sc model.Scope) ([]profile.Favorite, error) {
	favs, err := uc.repo.ListFavorites(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.ListFavorites: %v", err)
		return nil, err
	}
	return favs, nil
}

// AddFavorite saves the item for the caller. Saving twice is not an error.
func (uc *implUseCase) AddFavorite(ctx context.Context, sc model.Scope, itemID string) (profile.Favorite, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return profile.Favorite{}, profile.ErrItemNotFound
	}

	item, err := uc.items.GetOneItem(ctx, menuRepo.GetOneItemOptions{ID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.AddFavorite GetOneItem: %v", err)
		return profile.Favorite{}, err
	}
	if item.ID == "" {
		return profile.Favorite{}, profile.ErrItemNotFound
	}

	if err := uc.repo.AddFavorite(ctx, repo.FavoriteOptions{UserID: sc.UserID, MenuItemID: item.ID}); err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.AddFavorite: %v", err)
		return profile.Favorite{}, err
	}
	return profile.Favorite{Item: item}, nil
}

// RemoveFavorite drops the item from the caller's favorites. Removing an item
// that was never saved is not an error.
func (uc *implUseCase) RemoveFavorite(ctx context.Context, sc model.Scope, itemID string) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return profile.ErrItemNotFound
	}
	if err := uc.repo.RemoveFavorite(ctx, repo.FavoriteOptions{UserID: sc.UserID, MenuItemID: itemID}); err != nil {
		uc.l.Errorf(ctx, "internal.profile.usecase.RemoveFavorite: %v", err)
		return err
	}
	return nil
}
