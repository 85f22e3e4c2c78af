package menu

import "errors"

var (
	ErrItemNotFound    = errors.New("menu item not found")
	ErrUnknownCafe     = errors.New("unknown cafe")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidCategory = errors.New("invalid category")
)
