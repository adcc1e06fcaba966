package model

import (
	"context"
	"errors"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrItemNotFound     = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidCart      = errors.New("invalid cart")
	ErrSessionIDMissing = errors.New("session id is required")
)

// CartRepository persists cart snapshots per session.
type CartRepository interface {
	// Get loads the cart for a session. A missing cart yields ErrCartNotFound.
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Save stores the snapshot, replacing any previous one.
	Save(ctx context.Context, cart *Cart) error

	// Delete removes the session's cart. Deleting a missing cart is not an error.
	Delete(ctx context.Context, sessionID string) error

	// Update loads the cart (nil when missing), applies fn, and stores the result
	// atomically with respect to other Update calls on the same session.
	Update(ctx context.Context, sessionID string, fn func(current *Cart) (*Cart, error)) (*Cart, error)
}

// ProductRepository is the read side of the product catalog.
type ProductRepository interface {
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}
