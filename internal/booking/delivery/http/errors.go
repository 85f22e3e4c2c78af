package http

import (
	"errors"
	"net/http"

	"tastoria/internal/booking"
	pkgErrors "tastoria/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrUnknownCafe):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Cafe not found")
	case errors.Is(err, booking.ErrPastDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Date must not be in the past")
	case errors.Is(err, booking.ErrUnknownSlot):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown time slot")
	case errors.Is(err, booking.ErrInvalidPartySize):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid party size")
	case errors.Is(err, booking.ErrSlotFull):
		return pkgErrors.NewHTTPError(http.StatusConflict, "This slot is fully booked")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
