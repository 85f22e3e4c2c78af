package usecase

import (
	"context"

	"tastoria/internal/menu"
	repo "tastoria/internal/menu/repository"
)

func (uc *implUseCase) List(ctx context.Context, input menu.ListItemsInput) (menu.ListItemsOutput, error) {
	if input.CafeID != "" {
		if _, ok := menu.FindVenue(input.CafeID); !ok {
			return menu.ListItemsOutput{}, menu.ErrUnknownCafe
		}
	}

	category := normalizeCategory(input.Category)
	if category == menu.CategoryAll {
		category = ""
	}

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		CafeID:   input.CafeID,
		Category: category,
		Query:    input.Query,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.menu.usecase.List: %v", err)
		return menu.ListItemsOutput{}, err
	}

	return menu.ListItemsOutput{
		Items:  items,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
