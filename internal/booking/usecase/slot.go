package usecase

import (
	"context"

	"tastoria/internal/booking"
	repo "tastoria/internal/booking/repository"
)

// Slots lists the open slots of a day that still have seats, in configured order.
func (uc *implUseCase) Slots(ctx context.Context, input booking.SlotsInput) ([]booking.Slot, error) {
	if err := uc.validateDay(input.CafeID, input.Date); err != nil {
		return nil, err
	}

	seats, err := uc.repo.BookedSeats(ctx, repo.BookedSeatsOptions{CafeID: input.CafeID, Date: day(input.Date)})
	if err != nil {
		uc.l.Errorf(ctx, "internal.booking.usecase.Slots: %v", err)
		return nil, err
	}

	slots := []booking.Slot{}
	for _, t := range uc.cfg.OpenSlots {
		remaining := uc.cfg.CapacityPerSlot - seats[t]
		if remaining <= 0 {
			continue
		}
		slots = append(slots, booking.Slot{Time: t, Remaining: remaining})
	}
	return slots, nil
}
