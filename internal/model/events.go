package model

import (
	"time"

	"github.com/google/uuid"
)

// CartCheckedOut is published when a build's cart is checked out.
type CartCheckedOut struct {
	EventID    uuid.UUID
	BuildID    uuid.UUID
	Items      []CheckedOutItem
	Total      float64
	OccurredAt time.Time
}

type CheckedOutItem struct {
	Category Category
	PartID   string
	Name     string
	Price    float64
}

// CatalogUpdated signals that the part catalog changed and should be reloaded.
type CatalogUpdated struct {
	EventID    uuid.UUID
	Categories []Category
	OccurredAt time.Time
}
