package cart

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/jarco-storefront/core/internal/storefront/model"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSessionID returns a guest session id of the form session_<9 base36 chars>_<unix millis>.
func NewSessionID() string {
	return newSessionID(time.Now())
}

func newSessionID(now time.Time) string {
	var buf [9]byte
	max := big.NewInt(int64(len(base36)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("cart: reading random source: %v", err))
		}
		buf[i] = base36[n.Int64()]
	}
	return "session_" + string(buf[:]) + "_" + strconv.FormatInt(now.UnixMilli(), 10)
}

// Validate checks the structural contract the engine relies on but never
// enforces itself. Every violation is reported, each wrapping model.ErrInvalidCart.
func Validate(c *model.Cart) error {
	if c == nil {
		return fmt.Errorf("%w: nil cart", model.ErrInvalidCart)
	}

	var errs []error
	if c.SessionID == "" {
		errs = append(errs, fmt.Errorf("%w: %w", model.ErrInvalidCart, model.ErrSessionIDMissing))
	}

	seen := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		switch {
		case it.Key == "":
			errs = append(errs, fmt.Errorf("%w: item %d has no key", model.ErrInvalidCart, i))
		case seen[it.Key]:
			errs = append(errs, fmt.Errorf("%w: duplicate item key %q", model.ErrInvalidCart, it.Key))
		}
		seen[it.Key] = true

		if it.Quantity < 1 {
			errs = append(errs, fmt.Errorf("%w: item %q quantity %d", model.ErrInvalidCart, it.Key, it.Quantity))
		}
		if it.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("%w: item %q price %s", model.ErrInvalidCart, it.Key, it.Price))
		}
	}

	return errors.Join(errs...)
}
