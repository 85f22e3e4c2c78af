package repository

import (
	"time"

	"tastoria/internal/user"
)

type CreateUserOptions struct {
	Name                  string
	Email                 string
	PasswordHash          string
	IsVerified            bool
	VerificationCode      string
	VerificationExpiresAt time.Time
	GoogleID              string
	PhotoURL              string
}

// GetOneUserOptions filters are ANDed. VerificationCode only matches unexpired codes.
type GetOneUserOptions struct {
	ID               string
	Email            string
	VerificationCode string
}

// UpdateUserOptions replaces every mutable column of the user.
type UpdateUserOptions struct {
	ID                    string
	Name                  string
	IsVerified            bool
	VerificationCode      string
	VerificationExpiresAt time.Time
	GoogleID              string
	PhotoURL              string
	Bio                   string
	Location              string
	PhoneNumber           string
	Preferences           user.Preferences
}

// UpdateOptionsFrom seeds update options with the current state of u.
func UpdateOptionsFrom(u user.User) UpdateUserOptions {
	return UpdateUserOptions{
		ID:                    u.ID,
		Name:                  u.Name,
		IsVerified:            u.IsVerified,
		VerificationCode:      u.VerificationCode,
		VerificationExpiresAt: u.VerificationExpiresAt,
		GoogleID:              u.GoogleID,
		PhotoURL:              u.PhotoURL,
		Bio:                   u.Bio,
		Location:              u.Location,
		PhoneNumber:           u.PhoneNumber,
		Preferences:           u.Preferences,
	}
}
