package cart

import (
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

// VATPercent is the flat value-added tax applied to the subtotal.
const VATPercent = 15

var vatRate = decimal.New(VATPercent, -2)

var zero = decimal.Zero

// ComputeTotals folds items into cart totals:
//
//	subtotal = Σ price × quantity
//	tax      = subtotal × VATPercent / 100
//	total    = subtotal + shipping + tax − discount
//
// The total is not clamped; a discount larger than the rest yields a negative total.
func ComputeTotals(items []model.LineItem, shipping, discount decimal.Decimal) model.Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	tax := subtotal.Mul(vatRate)

	return model.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(shipping).Add(tax).Sub(discount),
	}
}
