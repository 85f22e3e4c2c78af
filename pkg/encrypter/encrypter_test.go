package encrypter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	e := New(bcrypt.MinCost)

	hash, err := e.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, e.ComparePassword(hash, "secret1"))
	assert.ErrorIs(t, e.ComparePassword(hash, "wrong"), ErrMismatch)
	assert.ErrorIs(t, e.ComparePassword("not-a-hash", "secret1"), ErrMismatch)
}

func TestNewOTP(t *testing.T) {
	e := New(0)
	re := regexp.MustCompile(`^[1-9]\d{5}$`)
	for i := 0; i < 50; i++ {
		otp, err := e.NewOTP()
		require.NoError(t, err)
		assert.Regexp(t, re, otp)
	}
}

func TestNewCode(t *testing.T) {
	e := New(0)
	a, err := e.NewCode()
	require.NoError(t, err)
	b, _ := e.NewCode()

	assert.Len(t, a, CodeLength*2)
	assert.NotEqual(t, a, b)
}
