package menu

import "time"

// --- Domain Models ---

// Venue is a cafe or bakery with its own menu. The set is fixed.
type Venue struct {
	Slug     string
	Name     string
	Kind     string
	Location string
}

type Item struct {
	ID          string
	CafeID      string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Weight      string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	CafeID      string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Weight      string
	IsAvailable *bool
}

type ListItemsInput struct {
	CafeID   string
	Category string
	Query    string
	Limit    int
	Offset   int
}

// UpdateItemInput is a partial update. Empty strings and nil pointers keep the stored value.
type UpdateItemInput struct {
	ID          string
	CafeID      string
	Name        string
	Description string
	Price       *float64
	Category    string
	Image       string
	Weight      string
	IsAvailable *bool
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items  []Item
	Total  int
	Limit  int
	Offset int
}
