package repository

type CreateItemOptions struct {
	CafeID      string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Weight      string
	IsAvailable bool
}

// GetOneItemOptions filters are ANDed. Empty fields are ignored.
type GetOneItemOptions struct {
	ID     string
	CafeID string
	Name   string
}

type ListItemsOptions struct {
	CafeID   string
	Category string
	// Query matches name or description, case-insensitively.
	Query  string
	Limit  int
	Offset int
}

// UpdateItemOptions replaces every column; callers merge partial input first.
type UpdateItemOptions struct {
	ID          string
	CafeID      string
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Weight      string
	IsAvailable bool
}
