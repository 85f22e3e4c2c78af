package http

import (
	"errors"
	"net/http"

	"tastoria/internal/profile"
	pkgErrors "tastoria/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, profile.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Menu item not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
