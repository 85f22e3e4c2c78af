package menu

import "tastoria/internal/model"

const (
	KindCafe   = "cafe"
	KindBakery = "bakery"

	defaultLocation = "Parbhani"
)

var venues = []Venue{
	{Slug: model.VenueHangoutCafe, Name: "Hangout Cafe", Kind: KindCafe, Location: defaultLocation},
	{Slug: model.VenueCafeHouse, Name: "Cafe House", Kind: KindCafe, Location: defaultLocation},
	{Slug: model.VenueTTMM, Name: "TTMM", Kind: KindCafe, Location: defaultLocation},
	{Slug: model.VenueGoldenBakery, Name: "Golden Bakery", Kind: KindBakery, Location: defaultLocation},
}

// Venues returns a copy of the known venues in display order.
func Venues() []Venue {
	out := make([]Venue, len(venues))
	copy(out, venues)
	return out
}

// FindVenue looks a venue up by slug.
func FindVenue(slug string) (Venue, bool) {
	for _, v := range venues {
		if v.Slug == slug {
			return v, true
		}
	}
	return Venue{}, false
}

// Categories accepted for menu items. "all" is a list filter, not a category.
var Categories = []string{
	"breakfast", "lunch", "dinner", "beverages", "desserts", "snacks", "starters", "main course",
}

const CategoryAll = "all"

func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
