package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectedVariant names the chosen value at each variant level.
// iPhones use Color, Storage and BatteryGrade; sneakers use Color and Size.
type SelectedVariant struct {
	Color        string `json:"color,omitempty"`
	Size         string `json:"size,omitempty"`
	Storage      string `json:"storage,omitempty"`
	BatteryGrade string `json:"batteryGrade,omitempty"`
	Network      string `json:"network,omitempty"`
}

// IsZero reports whether v selects nothing. A nil selection is zero.
func (v *SelectedVariant) IsZero() bool {
	return v == nil || *v == SelectedVariant{}
}

// Equal compares two selections field by field; nil equals the zero selection.
func (v *SelectedVariant) Equal(o *SelectedVariant) bool {
	if v.IsZero() || o.IsZero() {
		return v.IsZero() && o.IsZero()
	}
	return v.Color == o.Color &&
		v.Size == o.Size &&
		v.Storage == o.Storage &&
		v.BatteryGrade == o.BatteryGrade &&
		v.Network == o.Network
}

// Clone returns a copy that shares no memory with v.
func (v *SelectedVariant) Clone() *SelectedVariant {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// LineItem is one cart row. Price is captured when the item is first added and
// never recomputed from the product afterwards.
type LineItem struct {
	Key             string           `json:"_key"`
	ProductRef      string           `json:"product"`
	Quantity        int              `json:"quantity"`
	Price           decimal.Decimal  `json:"price"`
	SelectedVariant *SelectedVariant `json:"selectedVariant,omitempty"`
	AddedAt         time.Time        `json:"addedAt"`
}

// LineTotal is Price × Quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type ShippingSelection struct {
	ID    string          `json:"_ref"`
	Name  string          `json:"name,omitempty"`
	Price decimal.Decimal `json:"price"`
}

type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
)

type AppliedCoupon struct {
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	DiscountType   DiscountType    `json:"discountType"`
}

// Cart is the session cart snapshot. Totals and LastActivity are derived and
// are rewritten on every mutation.
type Cart struct {
	SessionID      string             `json:"sessionId"`
	CustomerRef    string             `json:"customer,omitempty"`
	Items          []LineItem         `json:"items"`
	ShippingMethod *ShippingSelection `json:"shippingMethod,omitempty"`
	AppliedCoupon  *AppliedCoupon     `json:"appliedCoupon,omitempty"`
	Totals         Totals             `json:"totals"`
	ExpiresAt      time.Time          `json:"expiresAt"`
	LastActivity   time.Time          `json:"lastActivity"`
}

// ShippingCost is the selected method's price, or zero.
func (c *Cart) ShippingCost() decimal.Decimal {
	if c.ShippingMethod == nil {
		return decimal.Zero
	}
	return c.ShippingMethod.Price
}

// Discount is the applied coupon's amount, or zero.
func (c *Cart) Discount() decimal.Decimal {
	if c.AppliedCoupon == nil {
		return decimal.Zero
	}
	return c.AppliedCoupon.DiscountAmount
}
