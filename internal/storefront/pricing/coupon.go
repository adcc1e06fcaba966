package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponInactive     = errors.New("coupon is not active")
	ErrCouponNotYetValid  = errors.New("coupon is not valid yet")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponExhausted    = errors.New("coupon usage limit reached")
	ErrBelowMinimumOrder  = errors.New("order is below the coupon minimum")
	ErrInvalidDiscount    = errors.New("invalid coupon discount")
	ErrCouponCodeRequired = errors.New("coupon code is required")
)

// Coupon is the CMS coupon document. Zero UsageLimit means unlimited and a
// zero ValidFrom or ValidUntil leaves that side of the window open.
type Coupon struct {
	Code               string             `json:"code"`
	Title              string             `json:"title,omitempty"`
	DiscountType       model.DiscountType `json:"discountType"`
	DiscountValue      decimal.Decimal    `json:"discountValue"`
	MinimumOrderAmount decimal.Decimal    `json:"minimumOrderAmount"`
	MaximumDiscount    *decimal.Decimal   `json:"maximumDiscount,omitempty"`
	UsageLimit         int                `json:"usageLimit"`
	UsageCount         int                `json:"usageCount"`
	ValidFrom          time.Time          `json:"validFrom"`
	ValidUntil         time.Time          `json:"validUntil"`
	IsActive           bool               `json:"isActive"`
}

// EvaluateCoupon checks c against the order at now and returns the discount it
// grants. shipping is the current shipping cost, used by free shipping coupons.
func EvaluateCoupon(c Coupon, subtotal, shipping decimal.Decimal, now time.Time) (model.AppliedCoupon, error) {
	code := normalizeCode(c.Code)
	switch {
	case code == "":
		return model.AppliedCoupon{}, ErrCouponCodeRequired
	case !c.IsActive:
		return model.AppliedCoupon{}, fmt.Errorf("%w: %s", ErrCouponInactive, code)
	case !c.ValidFrom.IsZero() && now.Before(c.ValidFrom):
		return model.AppliedCoupon{}, fmt.Errorf("%w: %s starts %s", ErrCouponNotYetValid, code, c.ValidFrom.Format(time.RFC3339))
	case !c.ValidUntil.IsZero() && now.After(c.ValidUntil):
		return model.AppliedCoupon{}, fmt.Errorf("%w: %s ended %s", ErrCouponExpired, code, c.ValidUntil.Format(time.RFC3339))
	case c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit:
		return model.AppliedCoupon{}, fmt.Errorf("%w: %s used %d of %d", ErrCouponExhausted, code, c.UsageCount, c.UsageLimit)
	case subtotal.LessThan(c.MinimumOrderAmount):
		return model.AppliedCoupon{}, fmt.Errorf("%w: %s needs %s", ErrBelowMinimumOrder, code, c.MinimumOrderAmount)
	}

	var amount decimal.Decimal
	switch c.DiscountType {
	case model.DiscountPercentage:
		if c.DiscountValue.IsNegative() || c.DiscountValue.GreaterThan(hundred) {
			return model.AppliedCoupon{}, fmt.Errorf("%w: percentage must be 0-100, got %s", ErrInvalidDiscount, c.DiscountValue)
		}
		amount = subtotal.Mul(c.DiscountValue).Div(hundred)
		if c.MaximumDiscount != nil && amount.GreaterThan(*c.MaximumDiscount) {
			amount = *c.MaximumDiscount
		}
	case model.DiscountFixed:
		if c.DiscountValue.IsNegative() {
			return model.AppliedCoupon{}, fmt.Errorf("%w: fixed discount cannot be negative", ErrInvalidDiscount)
		}
		amount = decimal.Min(c.DiscountValue, subtotal)
	case model.DiscountFreeShipping:
		amount = shipping
	default:
		return model.AppliedCoupon{}, fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, c.DiscountType)
	}

	return model.AppliedCoupon{
		Code:           code,
		DiscountAmount: amount,
		DiscountType:   c.DiscountType,
	}, nil
}
