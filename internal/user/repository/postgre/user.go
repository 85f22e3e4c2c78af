package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tastoria/internal/user"
	repo "tastoria/internal/user/repository"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	prefs, err := json.Marshal(user.DefaultPreferences())
	if err != nil {
		return user.User{}, repo.ErrFailedToInsert
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, is_verified, verification_code, verification_expires_at,
			google_id, photo_url, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		r.newID(), opt.Name, strings.ToLower(opt.Email), opt.PasswordHash, opt.IsVerified,
		nullString(opt.VerificationCode), nullTime(opt.VerificationExpiresAt),
		nullString(opt.GoogleID), opt.PhotoURL, prefs,
	))
	if isUniqueViolation(err) {
		return user.User{}, repo.ErrDuplicateEmail
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns a zero User when nothing matches or no filter is set.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	if len(args) == 0 {
		return user.User{}, nil
	}
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpdateUser returns a zero User when the row does not exist.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	prefs, err := json.Marshal(opt.Preferences)
	if err != nil {
		return user.User{}, repo.ErrFailedToUpdate
	}

	query := `
		UPDATE users
		SET name = $1, is_verified = $2, verification_code = $3, verification_expires_at = $4, google_id = $5,
			photo_url = $6, bio = $7, location = $8, phone_number = $9, preferences = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.IsVerified, nullString(opt.VerificationCode), nullTime(opt.VerificationExpiresAt),
		nullString(opt.GoogleID), opt.PhotoURL, opt.Bio, opt.Location, opt.PhoneNumber, prefs, opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

// DeleteUser removes the user. Favorites and bookings cascade.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
