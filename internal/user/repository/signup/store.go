// Package signup holds registrations that are waiting for OTP confirmation.
package signup

import (
	"context"
	"errors"

	"tastoria/internal/user"
)

var (
	ErrFailedToSave   = errors.New("failed to save pending signup")
	ErrFailedToGet    = errors.New("failed to get pending signup")
	ErrFailedToDelete = errors.New("failed to delete pending signup")
)

// Store keeps pending signups for a bounded time. Get returns a zero value
// when the id is unknown or the entry has been evicted.
type Store interface {
	Save(ctx context.Context, p user.PendingSignup) error
	Get(ctx context.Context, id string) (user.PendingSignup, error)
	Delete(ctx context.Context, id string) error
}
