package booking

import "errors"

var (
	ErrUnknownCafe      = errors.New("unknown cafe")
	ErrPastDate         = errors.New("date is in the past")
	ErrUnknownSlot      = errors.New("unknown slot")
	ErrInvalidPartySize = errors.New("invalid party size")
	ErrSlotFull         = errors.New("slot is full")
)
