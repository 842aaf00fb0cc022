// Package money convierte entre montos en centavos (unidad menor, como se
// almacenan) y su representación en unidades mayores para presentación.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents formatea un monto en centavos como moneda con separador de
// miles, ej. 150000 -> "$1,500.00". Aritmética entera: el monto nunca pasa
// por división en punto flotante.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s$%v.%02d", sign, number.Decimal(cents/100), cents%100)
}

// ParseMajor convierte un monto en unidades mayores ("157.95") a centavos.
// Más de 2 dígitos fraccionarios se redondea half-up (alejándose de cero):
// "157.955" -> 15796, "157.954" -> 15795.
func ParseMajor(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("monto inválido %q: %w", s, err)
	}
	return MajorToCents(d), nil
}

// MajorToCents aplica la misma regla de redondeo half-up sobre un decimal ya
// parseado (montos que llegan como número JSON).
func MajorToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// CentsToMajor devuelve el monto en unidades mayores como decimal exacto
// (centavos/100 sin pérdida). Solo para la frontera de presentación.
func CentsToMajor(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
