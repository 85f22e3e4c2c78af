package usecase

import (
	"context"

	"tastoria/internal/booking"
	repo "tastoria/internal/booking/repository"
	"tastoria/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (booking.Booking, error) {
	if err := uc.validateDay(input.CafeID, input.Date); err != nil {
		return booking.Booking{}, err
	}
	if !uc.isOpenSlot(input.Time) {
		return booking.Booking{}, booking.ErrUnknownSlot
	}
	if input.PartySize < 1 || input.PartySize > uc.cfg.MaxPartySize {
		return booking.Booking{}, booking.ErrInvalidPartySize
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		UserID:    sc.UserID,
		CafeID:    input.CafeID,
		Date:      day(input.Date),
		Time:      input.Time,
		PartySize: input.PartySize,
		Name:      input.Name,
		Contact:   input.Contact,
		Capacity:  uc.cfg.CapacityPerSlot,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.booking.usecase.Create: %v", err)
		return booking.Booking{}, err
	}
	if b.ID == "" {
		return booking.Booking{}, booking.ErrSlotFull
	}

	uc.l.Infof(ctx, "internal.booking.usecase.Create: booking %s for %s at %s", b.ID, b.CafeID, b.Time)
	return b, nil
}

func (uc *implUseCase) ListMine(ctx context.Context, sc model.Scope) ([]booking.Booking, error) {
	out, err := uc.repo.ListBookings(ctx, repo.ListBookingsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.booking.usecase.ListMine: %v", err)
		return nil, err
	}
	return out, nil
}
