// Package service runs cart engine operations against the session store.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	errx "github.com/jarco-storefront/core/internal/core/error"
	"github.com/jarco-storefront/core/internal/storefront/cart"
	"github.com/jarco-storefront/core/internal/storefront/model"
	"github.com/jarco-storefront/core/internal/storefront/pricing"
	logx "github.com/jarco-storefront/core/pkg/logger"
)

// PricingRules looks up the coupon and shipping method documents a cart refers to.
type PricingRules interface {
	Coupon(ctx context.Context, code string) (pricing.Coupon, error)
	ShippingMethod(ctx context.Context, id string) (pricing.ShippingMethod, error)
}

type CartService struct {
	products model.ProductRepository
	rules    PricingRules
	carts    model.CartRepository
	engine   *cart.Engine
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*CartService)

// WithClock replaces time.Now for coupon validity checks.
func WithClock(now func() time.Time) Option {
	return func(s *CartService) { s.now = now }
}

func NewCartService(products model.ProductRepository, rules PricingRules, carts model.CartRepository, engine *cart.Engine, cfg model.CartConfig, opts ...Option) *CartService {
	s := &CartService{
		products: products,
		rules:    rules,
		carts:    carts,
		engine:   engine,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
	if s.ttl <= 0 {
		s.ttl = cart.DefaultTTL
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns the session's cart, creating an empty one when none is stored.
// An empty sessionID starts a new guest session.
func (s *CartService) Open(ctx context.Context, sessionID string) (*model.Cart, error) {
	if sessionID == "" {
		sessionID = cart.NewSessionID()
	}
	return s.mutate(ctx, "open", sessionID, func(c model.Cart) (model.Cart, error) {
		return c, nil
	})
}

func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int, sel *model.SelectedVariant) (*model.Cart, error) {
	if quantity < 1 {
		return nil, errx.InvalidArgument(fmt.Errorf("%w: got %d", model.ErrInvalidQuantity, quantity), "quantity must be at least 1")
	}
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		logx.Debug().Err(err).Str("sessionID", sessionID).Str("productID", productID).Msg("product lookup failed")
		return nil, err
	}

	return s.mutate(ctx, "add_item", sessionID, func(c model.Cart) (model.Cart, error) {
		return s.engine.AddItem(c, product, quantity, sel), nil
	})
}

// RemoveItem drops the line with key. Removing an absent line is not an error.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, key string) (*model.Cart, error) {
	return s.mutate(ctx, "remove_item", sessionID, func(c model.Cart) (model.Cart, error) {
		return s.engine.RemoveItem(c, key), nil
	})
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, key string, quantity int) (*model.Cart, error) {
	if quantity < 0 {
		return nil, errx.InvalidArgument(fmt.Errorf("%w: got %d", model.ErrInvalidQuantity, quantity), "quantity cannot be negative")
	}
	return s.mutate(ctx, "update_quantity", sessionID, func(c model.Cart) (model.Cart, error) {
		if _, ok := cart.Find(c, key); !ok {
			return c, errx.NotFound(fmt.Errorf("%w: %s", model.ErrItemNotFound, key), "cart item not found")
		}
		return s.engine.UpdateItemQuantity(c, key, quantity), nil
	})
}

// SelectShipping looks up the shipping method, quotes it against the current
// subtotal and stores it. The quote is redone after every later change.
func (s *CartService) SelectShipping(ctx context.Context, sessionID, methodID string) (*model.Cart, error) {
	method, err := s.rules.ShippingMethod(ctx, methodID)
	if err != nil {
		logx.Debug().Err(err).Str("sessionID", sessionID).Str("methodID", methodID).Msg("shipping method lookup failed")
		return nil, err
	}

	return s.mutate(ctx, "select_shipping", sessionID, func(c model.Cart) (model.Cart, error) {
		quote, err := pricing.QuoteShipping(method, c.Totals.Subtotal)
		if err != nil {
			return c, errx.Unprocessable(err, "shipping method unavailable")
		}
		return s.engine.SetShipping(c, &quote), nil
	})
}

// ApplyCoupon looks up the coupon and evaluates it against the cart as it is
// now. It is evaluated again after every later change and dropped once the
// cart no longer qualifies.
func (s *CartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*model.Cart, error) {
	coupon, err := s.rules.Coupon(ctx, code)
	if err != nil {
		logx.Debug().Err(err).Str("sessionID", sessionID).Str("code", code).Msg("coupon lookup failed")
		return nil, err
	}

	return s.mutate(ctx, "apply_coupon", sessionID, func(c model.Cart) (model.Cart, error) {
		applied, err := pricing.EvaluateCoupon(coupon, c.Totals.Subtotal, c.ShippingCost(), s.now())
		if err != nil {
			return c, errx.Unprocessable(err, "coupon cannot be applied")
		}
		return s.engine.ApplyCoupon(c, applied), nil
	})
}

func (s *CartService) RemoveCoupon(ctx context.Context, sessionID string) (*model.Cart, error) {
	return s.mutate(ctx, "remove_coupon", sessionID, func(c model.Cart) (model.Cart, error) {
		return s.engine.RemoveCoupon(c), nil
	})
}

// Clear empties the cart but keeps the chosen shipping method.
func (s *CartService) Clear(ctx context.Context, sessionID string) (*model.Cart, error) {
	return s.mutate(ctx, "clear", sessionID, func(c model.Cart) (model.Cart, error) {
		return s.engine.Clear(c), nil
	})
}

// mutate loads (or creates) the cart, checks it, applies op, re-prices
// shipping and coupon and pushes the expiry forward, all inside one repository
// transaction.
func (s *CartService) mutate(ctx context.Context, op, sessionID string, fn func(model.Cart) (model.Cart, error)) (*model.Cart, error) {
	if sessionID == "" {
		return nil, errx.InvalidArgument(model.ErrSessionIDMissing, "session id is required")
	}

	c, err := s.carts.Update(ctx, sessionID, func(current *model.Cart) (*model.Cart, error) {
		if current == nil {
			fresh := s.engine.New(sessionID, s.ttl)
			current = &fresh
		}
		if err := cart.Validate(current); err != nil {
			return nil, errx.New(err, http.StatusInternalServerError, "stored cart is invalid")
		}

		next, err := fn(*current)
		if err != nil {
			return nil, err
		}
		if next, err = s.reprice(ctx, next); err != nil {
			return nil, err
		}
		next.ExpiresAt = next.LastActivity.Add(s.ttl)
		return &next, nil
	})
	if err != nil {
		ev := logx.Debug()
		if errx.StatusOf(err) >= http.StatusInternalServerError {
			ev = logx.Error()
		}
		ev.Err(err).Str("sessionID", sessionID).Str("op", op).Msg("cart operation failed")
		return nil, err
	}

	logx.Debug().Str("sessionID", sessionID).Str("op", op).Int("items", cart.ItemCount(*c)).Str("total", c.Totals.Total.String()).Msg("cart updated")
	return c, nil
}

// reprice quotes the stored shipping method and evaluates the stored coupon
// against the cart's current subtotal. Shipping goes first so a free shipping
// coupon sees the new fee. A method or coupon that is gone or no longer
// qualifies is dropped.
func (s *CartService) reprice(ctx context.Context, c model.Cart) (model.Cart, error) {
	if sel := c.ShippingMethod; sel != nil {
		method, err := s.rules.ShippingMethod(ctx, sel.ID)
		if err != nil && !errors.Is(err, pricing.ErrShippingMethodNotFound) {
			return c, err
		}
		var quote model.ShippingSelection
		if err == nil {
			quote, err = pricing.QuoteShipping(method, c.Totals.Subtotal)
		}
		if err != nil {
			logx.Info().Err(err).Str("sessionID", c.SessionID).Str("methodID", sel.ID).Msg("dropping shipping method")
			c.ShippingMethod = nil
		} else {
			c.ShippingMethod = &quote
		}
	}

	if applied := c.AppliedCoupon; applied != nil {
		coupon, err := s.rules.Coupon(ctx, applied.Code)
		if err != nil && !errors.Is(err, pricing.ErrCouponNotFound) {
			return c, err
		}
		var next model.AppliedCoupon
		if err == nil {
			next, err = pricing.EvaluateCoupon(coupon, c.Totals.Subtotal, c.ShippingCost(), s.now())
		}
		if err != nil {
			logx.Info().Err(err).Str("sessionID", c.SessionID).Str("code", applied.Code).Msg("dropping coupon")
			c.AppliedCoupon = nil
		} else {
			c.AppliedCoupon = &next
		}
	}

	return cart.Recalculate(c), nil
}
