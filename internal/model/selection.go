package model

import "fmt"

// Selection holds at most one chosen part per category.
// It is a value: copying it yields an independent snapshot.
type Selection struct {
	Motherboard *Motherboard
	CPU         *Processor
	RAM         *MemoryModule
	GPU         *GraphicsCard
	PSU         *PowerSupply
	Case        *Case
	Storage     *StorageDevice
	Monitor     *Monitor
	Keyboard    *Keyboard
	Mouse       *Mouse
	Cooler      *Cooler
}

// With returns a copy of s with item placed in its category, replacing any previous choice.
func (s Selection) With(item Item) (Selection, error) {
	switch v := item.(type) {
	case *Motherboard:
		s.Motherboard = v
	case *Processor:
		s.CPU = v
	case *MemoryModule:
		s.RAM = v
	case *GraphicsCard:
		s.GPU = v
	case *PowerSupply:
		s.PSU = v
	case *Case:
		s.Case = v
	case *StorageDevice:
		s.Storage = v
	case *Monitor:
		s.Monitor = v
	case *Keyboard:
		s.Keyboard = v
	case *Mouse:
		s.Mouse = v
	case *Cooler:
		s.Cooler = v
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownCategory, item)
	}
	return s, nil
}

// Without returns a copy of s with category c cleared.
func (s Selection) Without(c Category) Selection {
	switch c {
	case CategoryMotherboard:
		s.Motherboard = nil
	case CategoryCPU:
		s.CPU = nil
	case CategoryRAM:
		s.RAM = nil
	case CategoryGPU:
		s.GPU = nil
	case CategoryPSU:
		s.PSU = nil
	case CategoryCase:
		s.Case = nil
	case CategoryStorage:
		s.Storage = nil
	case CategoryMonitor:
		s.Monitor = nil
	case CategoryKeyboard:
		s.Keyboard = nil
	case CategoryMouse:
		s.Mouse = nil
	case CategoryCooler:
		s.Cooler = nil
	case CategoryUnknown:
	}
	return s
}

// Get returns the part chosen for c, or nil.
func (s Selection) Get(c Category) Item {
	switch c {
	case CategoryMotherboard:
		if s.Motherboard != nil {
			return s.Motherboard
		}
	case CategoryCPU:
		if s.CPU != nil {
			return s.CPU
		}
	case CategoryRAM:
		if s.RAM != nil {
			return s.RAM
		}
	case CategoryGPU:
		if s.GPU != nil {
			return s.GPU
		}
	case CategoryPSU:
		if s.PSU != nil {
			return s.PSU
		}
	case CategoryCase:
		if s.Case != nil {
			return s.Case
		}
	case CategoryStorage:
		if s.Storage != nil {
			return s.Storage
		}
	case CategoryMonitor:
		if s.Monitor != nil {
			return s.Monitor
		}
	case CategoryKeyboard:
		if s.Keyboard != nil {
			return s.Keyboard
		}
	case CategoryMouse:
		if s.Mouse != nil {
			return s.Mouse
		}
	case CategoryCooler:
		if s.Cooler != nil {
			return s.Cooler
		}
	case CategoryUnknown:
	}
	return nil
}

// Items returns the chosen parts in wizard order.
func (s Selection) Items() []Item {
	items := make([]Item, 0, len(Categories))
	for _, c := range Categories {
		if it := s.Get(c); it != nil {
			items = append(items, it)
		}
	}
	return items
}

func (s Selection) Count() int {
	return len(s.Items())
}

// Total sums the prices of the chosen parts.
func (s Selection) Total() float64 {
	var total float64
	for _, it := range s.Items() {
		total += it.Base().Price
	}
	return total
}

// Contains reports whether a part with the given id is chosen in any category.
func (s Selection) Contains(id string) bool {
	for _, it := range s.Items() {
		if it.Base().ID == id {
			return true
		}
	}
	return false
}

// IDs maps category keys to chosen part ids.
func (s Selection) IDs() map[Category]string {
	ids := make(map[Category]string, len(Categories))
	for _, it := range s.Items() {
		ids[it.Category()] = it.Base().ID
	}
	return ids
}
