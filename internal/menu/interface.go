package menu

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Venues(ctx context.Context) []Venue

	// Item CRUD
	Create(ctx context.Context, input CreateItemInput) (Item, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, input UpdateItemInput) (Item, error)
	Delete(ctx context.Context, id string) error
}
