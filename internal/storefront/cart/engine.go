// Package cart produces new cart snapshots for add, remove and update-quantity
// operations and folds line items into totals.
//
// Every Engine method treats its input cart as immutable: the returned cart
// never shares an Items backing array with the argument, so a caller holding
// the previous snapshot sees no change.
package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/jarco-storefront/core/internal/storefront/variant"
)

// DefaultTTL is how long a guest cart lives after creation.
const DefaultTTL = 7 * 24 * time.Hour

type Engine struct {
	now    func() time.Time
	newKey func() string
}

type Option func(*Engine)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithKeyFunc replaces the line item key generator.
func WithKeyFunc(f func() string) Option {
	return func(e *Engine) { e.newKey = f }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:    time.Now,
		newKey: NewItemKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewItemKey returns a unique line item key.
func NewItemKey() string {
	return "item_" + uuid.NewString()
}

// New returns an empty cart for sessionID expiring after ttl (DefaultTTL when ttl <= 0).
func (e *Engine) New(sessionID string, ttl time.Duration) model.Cart {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := e.now()
	return model.Cart{
		SessionID:    sessionID,
		Items:        []model.LineItem{},
		Totals:       ComputeTotals(nil, zero, zero),
		ExpiresAt:    now.Add(ttl),
		LastActivity: now,
	}
}

// AddItem adds quantity units of product under sel. An existing line for the
// same product and selection grows in quantity and keeps its captured price;
// otherwise a new line captures variant.ResolvePrice now. Quantity is not
// validated here.
func (e *Engine) AddItem(c model.Cart, product *model.Product, quantity int, sel *model.SelectedVariant) model.Cart {
	items := cloneItems(c.Items)

	var productRef string
	if product != nil {
		productRef = product.ID
	}

	idx := -1
	for i := range items {
		if items[i].ProductRef == productRef && items[i].SelectedVariant.Equal(sel) {
			idx = i
			break
		}
	}

	now := e.now()
	if idx >= 0 {
		items[idx].Quantity += quantity
	} else {
		items = append(items, model.LineItem{
			Key:             e.newKey(),
			ProductRef:      productRef,
			Quantity:        quantity,
			Price:           variant.ResolvePrice(product, sel),
			SelectedVariant: sel.Clone(),
			AddedAt:         now,
		})
	}

	c.Items = items
	return e.touch(c, now)
}

// RemoveItem drops the line with the given key. Unknown keys leave the items unchanged.
func (e *Engine) RemoveItem(c model.Cart, key string) model.Cart {
	items := make([]model.LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Key != key {
			items = append(items, cloneItem(it))
		}
	}
	c.Items = items
	return e.touch(c, e.now())
}

// UpdateItemQuantity sets the quantity of the line with the given key, leaving
// its price alone. A quantity of zero or less removes the line.
func (e *Engine) UpdateItemQuantity(c model.Cart, key string, quantity int) model.Cart {
	if quantity <= 0 {
		return e.RemoveItem(c, key)
	}

	items := cloneItems(c.Items)
	for i := range items {
		if items[i].Key == key {
			items[i].Quantity = quantity
		}
	}
	c.Items = items
	return e.touch(c, e.now())
}

// SetShipping selects a shipping method; nil clears it.
func (e *Engine) SetShipping(c model.Cart, sel *model.ShippingSelection) model.Cart {
	c.Items = cloneItems(c.Items)
	if sel != nil {
		s := *sel
		c.ShippingMethod = &s
	} else {
		c.ShippingMethod = nil
	}
	return e.touch(c, e.now())
}

// ApplyCoupon records an evaluated coupon; its amount feeds the discount total.
func (e *Engine) ApplyCoupon(c model.Cart, applied model.AppliedCoupon) model.Cart {
	c.Items = cloneItems(c.Items)
	c.AppliedCoupon = &applied
	return e.touch(c, e.now())
}

func (e *Engine) RemoveCoupon(c model.Cart) model.Cart {
	c.Items = cloneItems(c.Items)
	c.AppliedCoupon = nil
	return e.touch(c, e.now())
}

// Clear empties the cart and drops its coupon; the shipping choice survives.
func (e *Engine) Clear(c model.Cart) model.Cart {
	c.Items = []model.LineItem{}
	c.AppliedCoupon = nil
	return e.touch(c, e.now())
}

// Recalculate refreshes totals for a snapshot loaded from elsewhere without
// touching LastActivity.
func Recalculate(c model.Cart) model.Cart {
	c.Totals = ComputeTotals(c.Items, c.ShippingCost(), c.Discount())
	return c
}

// Find returns the line with the given key.
func Find(c model.Cart, key string) (model.LineItem, bool) {
	for _, it := range c.Items {
		if it.Key == key {
			return it, true
		}
	}
	return model.LineItem{}, false
}

// ItemCount is the number of units across all lines.
func ItemCount(c model.Cart) int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (e *Engine) touch(c model.Cart, now time.Time) model.Cart {
	c = Recalculate(c)
	c.LastActivity = now
	return c
}

func cloneItems(items []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it model.LineItem) model.LineItem {
	it.SelectedVariant = it.SelectedVariant.Clone()
	return it
}
