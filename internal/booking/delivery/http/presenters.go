package http

import (
	"strings"
	"time"

	"tastoria/internal/booking"
	"tastoria/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Date      response.Date `json:"date"`
	Time      string        `json:"time"      binding:"required"`
	PartySize int           `json:"partySize" binding:"required,min=1"`
	Name      string        `json:"name"      binding:"required,max=100"`
	Contact   string        `json:"contact"   binding:"required,max=100"`
}

func (r createReq) toInput(cafeID string) booking.CreateInput {
	return booking.CreateInput{
		CafeID:    cafeID,
		Date:      time.Time(r.Date),
		Time:      strings.TrimSpace(r.Time),
		PartySize: r.PartySize,
		Name:      strings.TrimSpace(r.Name),
		Contact:   strings.TrimSpace(r.Contact),
	}
}

// --- Response DTOs ---

type slotResp struct {
	Time      string `json:"time"`
	Remaining int    `json:"remaining"`
}

type slotsResp struct {
	CafeID string        `json:"cafeId"`
	Date   response.Date `json:"date"`
	Slots  []slotResp    `json:"slots"`
}

func newSlotsResp(cafeID string, date time.Time, slots []booking.Slot) slotsResp {
	out := slotsResp{CafeID: cafeID, Date: response.Date(date), Slots: make([]slotResp, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, slotResp{Time: s.Time, Remaining: s.Remaining})
	}
	return out
}

type bookingResp struct {
	ID        string        `json:"id"`
	CafeID    string        `json:"cafeId"`
	Date      response.Date `json:"date"`
	Time      string        `json:"time"`
	PartySize int           `json:"partySize"`
	Name      string        `json:"name"`
	Contact   string        `json:"contact"`
	CreatedAt time.Time     `json:"createdAt"`
}

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:        b.ID,
		CafeID:    b.CafeID,
		Date:      response.Date(b.Date),
		Time:      b.Time,
		PartySize: b.PartySize,
		Name:      b.Name,
		Contact:   b.Contact,
		CreatedAt: b.CreatedAt,
	}
}

func newBookingsResp(bs []booking.Booking) []bookingResp {
	out := make([]bookingResp, 0, len(bs))
	for _, b := range bs {
		out = append(out, newBookingResp(b))
	}
	return out
}
