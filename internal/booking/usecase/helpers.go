package usecase

import (
	"slices"
	"time"

	"tastoria/internal/booking"
	"tastoria/internal/menu"
)

func (uc *implUseCase) validateDay(cafeID string, date time.Time) error {
	if _, ok := menu.FindVenue(cafeID); !ok {
		return booking.ErrUnknownCafe
	}
	if day(date).Before(day(uc.now())) {
		return booking.ErrPastDate
	}
	return nil
}

func (uc *implUseCase) isOpenSlot(slot string) bool {
	return slices.Contains(uc.cfg.OpenSlots, slot)
}

// day truncates t to local midnight.
func day(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
