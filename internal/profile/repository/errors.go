package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert favorite")
	ErrFailedToDelete = errors.New("failed to delete favorite")
	ErrFailedToList   = errors.New("failed to list favorites")
)
