package repository

import (
	"context"

	"tastoria/internal/menu"
)

type Repository interface {
	ItemRepository
}

type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (menu.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (menu.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]menu.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (menu.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
