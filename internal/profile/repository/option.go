package repository

type FavoriteOptions struct {
	UserID     string
	MenuItemID string
}
