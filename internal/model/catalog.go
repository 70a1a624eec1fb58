package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Catalog is an immutable, indexed snapshot of all parts.
type Catalog struct {
	byCategory map[Category][]Item
	byID       map[string]Item
}

// NewCatalog indexes parts by category and id. Every item must belong to the
// category it is listed under and ids must be unique across the catalog.
func NewCatalog(parts map[Category][]Item) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[Category][]Item, len(Categories)),
		byID:       make(map[string]Item),
	}
	for _, cat := range Categories {
		items := parts[cat]
		list := make([]Item, 0, len(items))
		for _, it := range items {
			if it == nil {
				continue
			}
			if it.Category() != cat {
				return nil, fmt.Errorf("%w: part %q is %s, listed under %s",
					ErrCategoryMismatch, it.Base().ID, it.Category(), cat)
			}
			id := it.Base().ID
			if id == "" {
				return nil, fmt.Errorf("%w: %s part without id", ErrInvalidArgument, cat)
			}
			if _, dup := c.byID[id]; dup {
				return nil, fmt.Errorf("%w: duplicate part id %q", ErrInvalidArgument, id)
			}
			c.byID[id] = it
			list = append(list, it)
		}
		c.byCategory[cat] = list
	}
	return c, nil
}

// Items returns a copy of the parts in category cat, in catalog order.
func (c *Catalog) Items(cat Category) []Item {
	if c == nil {
		return nil
	}
	return append([]Item(nil), c.byCategory[cat]...)
}

func (c *Catalog) PartByID(id string) (Item, bool) {
	if c == nil {
		return nil, false
	}
	it, ok := c.byID[id]
	return it, ok
}

// Brands returns the distinct non-empty brands of category cat, sorted.
func (c *Catalog) Brands(cat Category) []string {
	brands := lo.Uniq(lo.FilterMap(c.Items(cat), func(it Item, _ int) (string, bool) {
		b := strings.TrimSpace(it.Base().Brand)
		return b, b != ""
	}))
	sort.Strings(brands)
	return brands
}

// Len returns the number of parts per category.
func (c *Catalog) Len() map[Category]int {
	out := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		out[cat] = len(c.byCategory[cat])
	}
	return out
}
