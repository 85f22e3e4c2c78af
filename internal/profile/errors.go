package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrItemNotFound    = errors.New("menu item not found")
)
