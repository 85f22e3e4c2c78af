package http

import (
	"errors"
	"net/http"

	"tastoria/internal/user"
	pkgErrors "tastoria/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserExists):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "User already exists")
	case errors.Is(err, user.ErrSendOTP):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to send verification email")
	case errors.Is(err, user.ErrInvalidSession):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid or expired session")
	case errors.Is(err, user.ErrInvalidOTP):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, user.ErrOTPExpired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "OTP has expired")
	case errors.Is(err, user.ErrInvalidCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid or expired verification code")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, user.ErrNotVerified):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Please verify your email first")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
