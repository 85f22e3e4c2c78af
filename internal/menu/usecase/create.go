package usecase

import (
	"context"

	"tastoria/internal/menu"
	repo "tastoria/internal/menu/repository"
)

// Create adds a menu item to a known venue. Items are available unless stated otherwise.
func (uc *implUseCase) Create(ctx context.Context, input menu.CreateItemInput) (menu.Item, error) {
	category := normalizeCategory(input.Category)
	if err := uc.validateItem(input.CafeID, category, input.Price); err != nil {
		return menu.Item{}, err
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		CafeID:      input.CafeID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Image:       input.Image,
		Weight:      input.Weight,
		IsAvailable: available,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.Create: %v", err)
		return menu.Item{}, err
	}
	return item, nil
}
