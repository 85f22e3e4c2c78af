package repository

import (
	"context"

	"tastoria/internal/booking"
)

type Repository interface {
	BookingRepository
}

type BookingRepository interface {
	// CreateBooking inserts only while the slot has room for the party.
	// A full slot yields a zero Booking and no error.
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, error)
	// BookedSeats sums party sizes per slot time for one cafe and day.
	BookedSeats(ctx context.Context, opt BookedSeatsOptions) (map[string]int, error)
}
