package model

// Venue slugs double as navigation targets for the chat responder.
const (
	VenueHangoutCafe  = "hangout-cafe"
	VenueCafeHouse    = "cafe-house"
	VenueTTMM         = "ttmm"
	VenueGoldenBakery = "golden-bakery"

	// PageTTMMSlot is the TTMM slot booking page.
	PageTTMMSlot = "ttmm-slot"
)
