// Package presenter turns parse results and customers into view models shared by
// the HTTP API and the CLI, and formats numbers for Brazilian display.
package presenter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + formatGrouped(amount, 2)
}

// FormatWeight renders kilograms with two decimals, e.g. "2,50 kg".
func FormatWeight(kg decimal.Decimal) string {
	return formatGrouped(kg, 2) + " kg"
}

// FormatQuantity renders a quantity without trailing zeros and with a decimal
// comma, e.g. "6" or "1,5".
func FormatQuantity(q decimal.Decimal) string {
	return strings.Replace(q.String(), ".", ",", 1)
}

func formatGrouped(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if fracPart == "" {
		return sign + b.String()
	}
	return sign + b.String() + "," + fracPart
}
