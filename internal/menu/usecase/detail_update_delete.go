package usecase

import (
	"context"

	"tastoria/internal/menu"
	repo "tastoria/internal/menu/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (menu.Item, error) {
	if err := checkID(id); err != nil {
		return menu.Item{}, err
	}
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.Detail: %v", err)
		return menu.Item{}, err
	}
	if item.ID == "" {
		return menu.Item{}, menu.ErrItemNotFound
	}
	return item, nil
}

// Update merges input over the stored item and validates the result.
func (uc *implUseCase) Update(ctx context.Context, input menu.UpdateItemInput) (menu.Item, error) {
	if err := checkID(input.ID); err != nil {
		return menu.Item{}, err
	}
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.Update GetOneItem: %v", err)
		return menu.Item{}, err
	}
	if existing.ID == "" {
		return menu.Item{}, menu.ErrItemNotFound
	}

	opt := repo.UpdateItemOptions{
		ID:          existing.ID,
		CafeID:      uc.coalesce(input.CafeID, existing.CafeID),
		Name:        uc.coalesce(input.Name, existing.Name),
		Description: uc.coalesce(input.Description, existing.Description),
		Price:       existing.Price,
		Category:    uc.coalesce(normalizeCategory(input.Category), existing.Category),
		Image:       uc.coalesce(input.Image, existing.Image),
		Weight:      uc.coalesce(input.Weight, existing.Weight),
		IsAvailable: existing.IsAvailable,
	}
	if input.Price != nil {
		opt.Price = *input.Price
	}
	if input.IsAvailable != nil {
		opt.IsAvailable = *input.IsAvailable
	}
	if err := uc.validateItem(opt.CafeID, opt.Category, opt.Price); err != nil {
		return menu.Item{}, err
	}

	item, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.Update UpdateItem: %v", err)
		return menu.Item{}, err
	}
	if item.ID == "" {
		return menu.Item{}, menu.ErrItemNotFound
	}
	return item, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return menu.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
