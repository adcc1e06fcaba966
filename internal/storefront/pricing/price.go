// Package pricing holds the price arithmetic that sits next to the cart:
// adjustments, sale percentages, coupon evaluation and shipping quotes.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FinalPrice adds every adjustment to base.
func FinalPrice(base decimal.Decimal, adjustments ...decimal.Decimal) decimal.Decimal {
	return base.Add(decimal.Sum(decimal.Zero, adjustments...))
}

// DiscountPercentage returns how much cheaper sale is than original, rounded
// to a whole percent. It is 0 when the sale price is not lower.
func DiscountPercentage(original, sale decimal.Decimal) int {
	if original.LessThanOrEqual(sale) || !original.IsPositive() {
		return 0
	}
	pct := original.Sub(sale).Div(original).Mul(hundred).Round(0)
	return int(pct.IntPart())
}
