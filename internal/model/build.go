package model

import (
	"time"

	"github.com/google/uuid"
)

// Build is one user's in-progress configuration together with their cart.
type Build struct {
	ID        uuid.UUID
	Selection Selection
	Cart      Cart
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BuildRecord is the persisted form of a Build; parts are referenced by id only.
type BuildRecord struct {
	ID        uuid.UUID
	Selection map[string]string
	Cart      []CartRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartRecord struct {
	Category string
	PartID   string
}

// Record converts b into its persisted form.
func (b Build) Record() BuildRecord {
	sel := make(map[string]string, len(Categories))
	for cat, id := range b.Selection.IDs() {
		sel[cat.String()] = id
	}
	cart := make([]CartRecord, 0, len(b.Cart))
	for _, ci := range b.Cart {
		cart = append(cart, CartRecord{Category: ci.Category.String(), PartID: ci.Item.Base().ID})
	}
	return BuildRecord{
		ID:        b.ID,
		Selection: sel,
		Cart:      cart,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BuildSummary is the read model shown on the summary page.
type BuildSummary struct {
	ID            uuid.UUID
	Selected      []Item
	SelectedCount int
	CategoryCount int
	Total         float64
	TotalText     string
	Cart          Cart
	CartCount     int
	CartTotal     float64
	CartTotalText string
	Extras        []CartItem
	UpdatedAt     time.Time
}

// Summarize computes the summary of b.
func (b Build) Summarize() BuildSummary {
	items := b.Selection.Items()
	total := b.Selection.Total()
	cartTotal := b.Cart.Total()
	return BuildSummary{
		ID:            b.ID,
		Selected:      items,
		SelectedCount: len(items),
		CategoryCount: len(Categories),
		Total:         total,
		TotalText:     PriceText(total),
		Cart:          b.Cart,
		CartCount:     b.Cart.Count(),
		CartTotal:     cartTotal,
		CartTotalText: PriceText(cartTotal),
		Extras:        b.Cart.Extras(b.Selection),
		UpdatedAt:     b.UpdatedAt,
	}
}
