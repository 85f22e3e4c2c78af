package encrypter

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	OTPLength  = 6
	CodeLength = 32
)

var ErrMismatch = errors.New("hash does not match")

// Encrypter hashes passwords and produces one-time secrets.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
	NewOTP() (string, error)
	NewCode() (string, error)
}

type implEncrypter struct {
	cost int
}

// New returns a bcrypt backed Encrypter. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return implEncrypter{cost: cost}
}

func (e implEncrypter) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (e implEncrypter) ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}

// NewOTP returns a zero-padded 6 digit numeric code in 100000..999999.
func (e implEncrypter) NewOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()+100000), nil
}

// NewCode returns CodeLength random bytes, hex encoded.
func (e implEncrypter) NewCode() (string, error) {
	b := make([]byte, CodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return hex.EncodeToString(b), nil
}
