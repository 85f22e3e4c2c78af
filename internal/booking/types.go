package booking

import "time"

// Booking is a table reserved for one slot on one day.
type Booking struct {
	ID        string
	UserID    string
	CafeID    string
	Date      time.Time
	Time      string
	PartySize int
	Name      string
	Contact   string
	CreatedAt time.Time
}

// Slot is an open time on a given day with the seats still free.
type Slot struct {
	Time      string
	Remaining int
}

// --- UseCase Inputs ---

type SlotsInput struct {
	CafeID string
	Date   time.Time
}

type CreateInput struct {
	CafeID    string
	Date      time.Time
	Time      string
	PartySize int
	Name      string
	Contact   string
}
