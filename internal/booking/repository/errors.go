package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert booking")
	ErrFailedToList   = errors.New("failed to list bookings")
)
