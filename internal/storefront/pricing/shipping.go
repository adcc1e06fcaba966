package pricing

import (
	"errors"
	"fmt"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

type Provider string

const (
	ProviderPaxi       Provider = "paxi"
	ProviderCourierGuy Provider = "courier_guy"
	ProviderCOD        Provider = "cod"
)

var (
	ErrShippingInactive      = errors.New("shipping method is not active")
	ErrBelowShippingMinimum  = errors.New("order is below the shipping method minimum")
	ErrShippingMethodMissing = errors.New("shipping method id is required")
)

// ShippingMethod is the CMS shipping method document. A zero FreeThreshold
// never waives the fee.
type ShippingMethod struct {
	ID                string          `json:"_id"`
	Provider          Provider        `json:"provider"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	FreeThreshold     decimal.Decimal `json:"freeThreshold"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
	CODFee            decimal.Decimal `json:"codFee"`
	MinOrderAmount    decimal.Decimal `json:"minOrderAmount"`
	IsActive          bool            `json:"isActive"`
}

// QuoteShipping prices m for an order of subtotal.
func QuoteShipping(m ShippingMethod, subtotal decimal.Decimal) (model.ShippingSelection, error) {
	switch {
	case m.ID == "":
		return model.ShippingSelection{}, ErrShippingMethodMissing
	case !m.IsActive:
		return model.ShippingSelection{}, fmt.Errorf("%w: %s", ErrShippingInactive, m.ID)
	case subtotal.LessThan(m.MinOrderAmount):
		return model.ShippingSelection{}, fmt.Errorf("%w: %s needs %s", ErrBelowShippingMinimum, m.ID, m.MinOrderAmount)
	}

	price := m.Price
	if m.FreeThreshold.IsPositive() && subtotal.GreaterThanOrEqual(m.FreeThreshold) {
		price = decimal.Zero
	}
	if m.Provider == ProviderCOD {
		price = price.Add(m.CODFee)
	}

	return model.ShippingSelection{ID: m.ID, Name: m.Name, Price: price}, nil
}
