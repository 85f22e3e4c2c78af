package http

import (
	"strings"
	"time"

	"tastoria/internal/profile"
	"tastoria/internal/user"
)

// --- Request DTOs ---

type notificationsReq struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type dietaryReq struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
}

type preferencesReq struct {
	Notifications notificationsReq `json:"notifications"`
	Dietary       dietaryReq       `json:"dietary"`
}

type updateReq struct {
	Name        string          `json:"name"        binding:"max=100"`
	PhoneNumber string          `json:"phoneNumber" binding:"omitempty,phone"`
	Location    string          `json:"location"    binding:"max=200"`
	Bio         string          `json:"bio"         binding:"max=500"`
	PhotoURL    string          `json:"photoURL"    binding:"omitempty,url"`
	Preferences *preferencesReq `json:"preferences"`
}

func (r updateReq) toInput() profile.UpdateInput {
	in := profile.UpdateInput{
		Name:        strings.TrimSpace(r.Name),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Location:    strings.TrimSpace(r.Location),
		Bio:         strings.TrimSpace(r.Bio),
		PhotoURL:    strings.TrimSpace(r.PhotoURL),
	}
	if r.Preferences != nil {
		in.Preferences = &user.Preferences{
			Notifications: user.NotificationPreferences{
				Email: r.Preferences.Notifications.Email,
				Push:  r.Preferences.Notifications.Push,
			},
			Dietary: user.DietaryPreferences{
				Vegetarian: r.Preferences.Dietary.Vegetarian,
				Vegan:      r.Preferences.Dietary.Vegan,
				GlutenFree: r.Preferences.Dietary.GlutenFree,
			},
		}
	}
	return in
}

// --- Response DTOs ---

type profileResp struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	IsVerified  bool             `json:"isVerified"`
	PhotoURL    string           `json:"photoURL"`
	Bio         string           `json:"bio"`
	Location    string           `json:"location"`
	PhoneNumber string           `json:"phoneNumber"`
	Preferences user.Preferences `json:"preferences"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func newProfileResp(u user.User) profileResp {
	return profileResp{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsVerified:  u.IsVerified,
		PhotoURL:    u.PhotoURL,
		Bio:         u.Bio,
		Location:    u.Location,
		PhoneNumber: u.PhoneNumber,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type favoriteResp struct {
	ID          string     `json:"id"`
	CafeID      string     `json:"cafeId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	IsAvailable bool       `json:"isAvailable"`
	SavedAt     *time.Time `json:"savedAt,omitempty"`
}

func newFavoriteResp(f profile.Favorite) favoriteResp {
	r := favoriteResp{
		ID:          f.Item.ID,
		CafeID:      f.Item.CafeID,
		Name:        f.Item.Name,
		Description: f.Item.Description,
		Price:       f.Item.Price,
		Category:    f.Item.Category,
		Image:       f.Item.Image,
		IsAvailable: f.Item.IsAvailable,
	}
	if !f.SavedAt.IsZero() {
		saved := f.SavedAt
		r.SavedAt = &saved
	}
	return r
}

func newFavoritesResp(favs []profile.Favorite) []favoriteResp {
	out := make([]favoriteResp, 0, len(favs))
	for _, f := range favs {
		out = append(out, newFavoriteResp(f))
	}
	return out
}

type messageResp struct {
	Message string `json:"message"`
}
