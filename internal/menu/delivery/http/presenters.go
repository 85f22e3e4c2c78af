package http

import (
	"time"

	"tastoria/internal/menu"
)

// --- Request DTOs ---

type createReq struct {
	CafeID      string  `json:"cafeId"      binding:"required"`
	Name        string  `json:"name"        binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=1000"`
	Price       float64 `json:"price"       binding:"required"`
	Category    string  `json:"category"    binding:"required"`
	Image       string  `json:"image"       binding:"omitempty,url"`
	Weight      string  `json:"weight"      binding:"max=50"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (r createReq) toInput() menu.CreateItemInput {
	return menu.CreateItemInput{
		CafeID:      r.CafeID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Weight:      r.Weight,
		IsAvailable: r.IsAvailable,
	}
}

type listReq struct {
	CafeID   string `form:"cafeId"`
	Category string `form:"category"`
	Query    string `form:"q"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() menu.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return menu.ListItemsInput{
		CafeID:   r.CafeID,
		Category: r.Category,
		Query:    r.Query,
		Limit:    limit,
		Offset:   offset,
	}
}

type updateReq struct {
	ID          string   `json:"-"`
	CafeID      string   `json:"cafeId"`
	Name        string   `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"       binding:"omitempty,url"`
	Weight      string   `json:"weight"      binding:"omitempty,max=50"`
	IsAvailable *bool    `json:"isAvailable"`
}

func (r updateReq) toInput() menu.UpdateItemInput {
	return menu.UpdateItemInput{
		ID:          r.ID,
		CafeID:      r.CafeID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Weight:      r.Weight,
		IsAvailable: r.IsAvailable,
	}
}

// --- Response DTOs ---

type venueResp struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Location string `json:"location"`
}

func (h *handler) newVenuesResp(vs []menu.Venue) []venueResp {
	out := make([]venueResp, len(vs))
	for i, v := range vs {
		out[i] = venueResp{Slug: v.Slug, Name: v.Name, Kind: v.Kind, Location: v.Location}
	}
	return out
}

type itemResp struct {
	ID          string    `json:"id"`
	CafeID      string    `json:"cafeId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Weight      string    `json:"weight,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newItemResp(item menu.Item) itemResp {
	return itemResp{
		ID:          item.ID,
		CafeID:      item.CafeID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Weight:      item.Weight,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out menu.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
