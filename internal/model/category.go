package model

import (
	"fmt"
	"strings"
)

type Category int32

const (
	CategoryUnknown Category = iota
	CategoryMotherboard
	CategoryCPU
	CategoryRAM
	CategoryGPU
	CategoryPSU
	CategoryCase
	CategoryStorage
	CategoryMonitor
	CategoryKeyboard
	CategoryMouse
	CategoryCooler
)

// Categories lists the eleven build categories in wizard order.
var Categories = []Category{
	CategoryMotherboard,
	CategoryCPU,
	CategoryRAM,
	CategoryGPU,
	CategoryPSU,
	CategoryCase,
	CategoryStorage,
	CategoryMonitor,
	CategoryKeyboard,
	CategoryMouse,
	CategoryCooler,
}

var categoryKeys = map[Category]string{
	CategoryMotherboard: "motherboard",
	CategoryCPU:         "cpu",
	CategoryRAM:         "ram",
	CategoryGPU:         "gpu",
	CategoryPSU:         "psu",
	CategoryCase:        "case",
	CategoryStorage:     "storage",
	CategoryMonitor:     "monitor",
	CategoryKeyboard:    "keyboard",
	CategoryMouse:       "mouse",
	CategoryCooler:      "cpu_cooler",
}

func (c Category) String() string {
	if k, ok := categoryKeys[c]; ok {
		return k
	}
	return "unknown"
}

func (c Category) Valid() bool {
	_, ok := categoryKeys[c]
	return ok
}

func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, k := range categoryKeys {
		if k == key {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
