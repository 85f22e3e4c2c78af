package postgre

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"tastoria/internal/user"

	"github.com/lib/pq"
)

const userColumns = `id, name, email, password_hash, is_verified, verification_code, verification_expires_at,
	google_id, photo_url, bio, location, phone_number, is_admin, preferences, created_at, updated_at`

const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (user.User, error) {
	var (
		u         user.User
		code      sql.NullString
		expiresAt sql.NullTime
		googleID  sql.NullString
		prefs     []byte
	)
	err := s.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsVerified, &code, &expiresAt,
		&googleID, &u.PhotoURL, &u.Bio, &u.Location, &u.PhoneNumber, &u.IsAdmin, &prefs, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	u.VerificationCode = code.String
	u.VerificationExpiresAt = expiresAt.Time
	u.GoogleID = googleID.String
	u.Preferences = user.DefaultPreferences()
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &u.Preferences); err != nil {
			return user.User{}, err
		}
	}
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
