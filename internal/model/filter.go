package model

// PartsFilter narrows the candidate list of the picker.
type PartsFilter struct {
	// Exact brand match; empty means any.
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	// Out-of-stock parts are hidden unless set.
	IncludeOutOfStock bool
	// Parts that fail the compatibility check are hidden when set.
	HideIncompatible bool
}

// Match applies the brand, price and stock criteria. Compatibility is checked separately.
func (f PartsFilter) Match(p Part) bool {
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if !f.IncludeOutOfStock && !p.InStock() {
		return false
	}
	return true
}

// Candidate is a part as presented by the picker.
type Candidate struct {
	Item       Item
	Compatible bool
	// Out of stock or incompatible; the part cannot be selected.
	Disabled bool
}
