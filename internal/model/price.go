package model

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "₺"

var trPrinter = message.NewPrinter(language.Turkish)

// PriceText renders an amount as Turkish lira with no fractional digits, e.g. "₺12.345".
func PriceText(amount float64) string {
	return currencySymbol + trPrinter.Sprintf("%d", int64(math.Round(amount)))
}
