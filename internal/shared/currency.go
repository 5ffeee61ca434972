package shared

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount as Colombian pesos, e.g. "$1.000 COP".
// Presentation only; all arithmetic stays on plain decimal amounts.
func FormatCOP(amount float64) string {
	if amount == math.Trunc(amount) {
		return copPrinter.Sprintf("$%d COP", int64(amount))
	}
	return copPrinter.Sprintf("$%.2f COP", amount)
}
