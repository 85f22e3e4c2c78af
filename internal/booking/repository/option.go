package repository

import "time"

type CreateBookingOptions struct {
	UserID    string
	CafeID    string
	Date      time.Time
	Time      string
	PartySize int
	Name      string
	Contact   string
	// Capacity is the seat limit of the slot.
	Capacity int
}

type ListBookingsOptions struct {
	UserID string
}

type BookedSeatsOptions struct {
	CafeID string
	Date   time.Time
}
