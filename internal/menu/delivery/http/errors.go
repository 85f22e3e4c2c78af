package http

import (
	"errors"
	"net/http"

	"tastoria/internal/menu"
	pkgErrors "tastoria/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates use case errors. Anything unrecognised is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, menu.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "menu item not found")
	case errors.Is(err, menu.ErrUnknownCafe):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown cafe")
	case errors.Is(err, menu.ErrInvalidPrice):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "price must be greater than zero")
	case errors.Is(err, menu.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid category")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
