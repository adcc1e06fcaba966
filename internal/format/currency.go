// Package format renders storefront values for the en-ZA locale and checks
// customer input.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

const nbsp = "\u00a0"

// Price renders amount in rand, e.g. "R 1 234,56". Separators are
// non-breaking spaces and negatives lead with "-".
func Price(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("R" + nbsp)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(nbsp)
		}
		b.WriteRune(r)
	}
	b.WriteString("," + frac)
	return b.String()
}
