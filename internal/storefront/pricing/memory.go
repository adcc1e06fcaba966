package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errx "github.com/jarco-storefront/core/internal/core/error"
)

var (
	ErrCouponNotFound         = errors.New("coupon not found")
	ErrShippingMethodNotFound = errors.New("shipping method not found")
)

// MemoryRules serves a fixed set of coupon and shipping method documents.
// Coupon codes are matched case-insensitively.
type MemoryRules struct {
	coupons map[string]Coupon
	methods map[string]ShippingMethod
}

func NewMemoryRules(coupons []Coupon, methods []ShippingMethod) *MemoryRules {
	r := &MemoryRules{
		coupons: make(map[string]Coupon, len(coupons)),
		methods: make(map[string]ShippingMethod, len(methods)),
	}
	for _, c := range coupons {
		r.coupons[normalizeCode(c.Code)] = c
	}
	for _, m := range methods {
		r.methods[m.ID] = m
	}
	return r
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *MemoryRules) Coupon(_ context.Context, code string) (Coupon, error) {
	c, ok := r.coupons[normalizeCode(code)]
	if !ok {
		return Coupon{}, errx.NotFound(fmt.Errorf("%w: %s", ErrCouponNotFound, code), "coupon not found")
	}
	return c, nil
}

func (r *MemoryRules) ShippingMethod(_ context.Context, id string) (ShippingMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return ShippingMethod{}, errx.NotFound(fmt.Errorf("%w: %s", ErrShippingMethodNotFound, id), "shipping method not found")
	}
	return m, nil
}
