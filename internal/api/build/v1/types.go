// Package buildv1 holds the JSON shapes of the build API, version 1.
package buildv1

import "time"

type Stock struct {
	Status   string `json:"durum"`
	Quantity int64  `json:"adet"`
}

type Part struct {
	ID       string         `json:"id"`
	Category string         `json:"kategori"`
	Brand    string         `json:"marka"`
	Model    string         `json:"model,omitempty"`
	Name     string         `json:"ad,omitempty"`
	Price    float64        `json:"fiyat_try"`
	Stock    Stock          `json:"stok"`
	Tags     []string       `json:"etiketler,omitempty"`
	Specs    map[string]any `json:"ozellikler,omitempty"`
}

type Candidate struct {
	Part       Part `json:"part"`
	Compatible bool `json:"compatible"`
	Disabled   bool `json:"disabled"`
}

type CartItem struct {
	Index    int    `json:"index"`
	Category string `json:"kategori"`
	Part     Part   `json:"part"`
}

type Build struct {
	ID        string          `json:"id"`
	Selection map[string]Part `json:"selection"`
	Cart      []CartItem      `json:"cart"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Summary struct {
	ID            string     `json:"id"`
	Selected      []Part     `json:"selected"`
	SelectedCount int        `json:"selected_count"`
	CategoryCount int        `json:"category_count"`
	Progress      string     `json:"progress"`
	Total         float64    `json:"total_try"`
	TotalText     string     `json:"total_text"`
	Cart          []CartItem `json:"cart"`
	CartCount     int        `json:"cart_count"`
	CartTotal     float64    `json:"cart_total_try"`
	CartTotalText string     `json:"cart_total_text"`
	Extras        []CartItem `json:"extras"`
}

type CheckoutItem struct {
	Category string  `json:"kategori"`
	PartID   string  `json:"id"`
	Name     string  `json:"ad"`
	Price    float64 `json:"fiyat_try"`
}

type Checkout struct {
	EventID    string         `json:"event_id"`
	BuildID    string         `json:"build_id"`
	Items      []CheckoutItem `json:"items"`
	Total      float64        `json:"total_try"`
	TotalText  string         `json:"total_text"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type SelectRequest struct {
	PartID string `json:"part_id"`
}

type AddToCartRequest struct {
	Category string `json:"kategori"`
	PartID   string `json:"part_id"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
