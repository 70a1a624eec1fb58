package repository

type cartEntry struct {
	Category string `json:"kategori"`
	PartID   string `json:"id"`
}

type checkoutItem struct {
	Category string  `json:"kategori"`
	PartID   string  `json:"id"`
	Name     string  `json:"ad"`
	PriceTRY float64 `json:"fiyat_try"`
}
