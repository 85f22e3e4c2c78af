package profile

import (
	"time"

	"tastoria/internal/menu"
	"tastoria/internal/user"
)

// Favorite is a menu item saved by a user. A user saves an item at most once.
type Favorite struct {
	Item    menu.Item
	SavedAt time.Time
}

// UpdateInput is a partial update. Empty strings and a nil Preferences keep
// the stored value.
type UpdateInput struct {
	Name        string
	PhoneNumber string
	Location    string
	Bio         string
	PhotoURL    string
	Preferences *user.Preferences
}
