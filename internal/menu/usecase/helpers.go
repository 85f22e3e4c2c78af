package usecase

import (
	"strings"

	"tastoria/internal/menu"

	"github.com/google/uuid"
)

// checkID rejects ids that cannot name a stored item.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return menu.ErrItemNotFound
	}
	return nil
}

// coalesce returns newVal unless it is empty.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func (uc *implUseCase) validateItem(cafeID, category string, price float64) error {
	if _, ok := menu.FindVenue(cafeID); !ok {
		return menu.ErrUnknownCafe
	}
	if !menu.IsCategory(category) {
		return menu.ErrInvalidCategory
	}
	if price <= 0 {
		return menu.ErrInvalidPrice
	}
	return nil
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
