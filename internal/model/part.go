package model

import "strings"

type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

type Stock struct {
	Status   StockStatus
	Quantity int64
}

// Part holds the fields every catalog record shares.
type Part struct {
	// Unique identifier across the whole catalog.
	ID string
	// Manufacturer brand.
	Brand string
	// Optional model designation.
	Model string
	// Optional display name.
	Name string
	// Non-negative price in Turkish lira.
	Price float64
	Stock Stock
	// Free-text tags.
	Tags []string
}

// Item is a part of a concrete category.
type Item interface {
	Base() Part
	Category() Category
}

func (p Part) Base() Part { return p }

func (p Part) InStock() bool { return p.Stock.Status == StockInStock }

// DisplayName prefers the explicit name and falls back to "brand model".
func (p Part) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return strings.TrimSpace(p.Brand + " " + p.Model)
}
