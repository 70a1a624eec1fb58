package model

import "fmt"

type CartItem struct {
	Category Category
	Item     Item
}

// Cart is an ordered list of parts; duplicates are allowed.
type Cart []CartItem

// Add returns a new cart with item appended.
func (c Cart) Add(item Item) Cart {
	out := make(Cart, 0, len(c)+1)
	out = append(out, c...)
	return append(out, CartItem{Category: item.Category(), Item: item})
}

// Remove returns a new cart without the entry at index.
func (c Cart) Remove(index int) (Cart, error) {
	if index < 0 || index >= len(c) {
		return c, fmt.Errorf("%w: %d (len %d)", ErrCartIndexOutOfRange, index, len(c))
	}
	out := make(Cart, 0, len(c)-1)
	out = append(out, c[:index]...)
	return append(out, c[index+1:]...), nil
}

func (c Cart) Count() int { return len(c) }

func (c Cart) Total() float64 {
	var total float64
	for _, ci := range c {
		total += ci.Item.Base().Price
	}
	return total
}

// Extras returns cart entries whose part is not part of sel.
func (c Cart) Extras(sel Selection) []CartItem {
	var extras []CartItem
	for _, ci := range c {
		if !sel.Contains(ci.Item.Base().ID) {
			extras = append(extras, ci)
		}
	}
	return extras
}
