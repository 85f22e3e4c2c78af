package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert menu item")
	ErrFailedToGet    = errors.New("failed to get menu item")
	ErrFailedToList   = errors.New("failed to list menu items")
	ErrFailedToUpdate = errors.New("failed to update menu item")
	ErrFailedToDelete = errors.New("failed to delete menu item")
)
