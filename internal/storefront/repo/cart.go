package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	errx "github.com/jarco-storefront/core/internal/core/error"
	"github.com/jarco-storefront/core/internal/storefront/cart"
	"github.com/jarco-storefront/core/internal/storefront/model"
	logx "github.com/jarco-storefront/core/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const defaultMaxRetries = 5

type RedisCartRepository struct {
	rdb        redis.UniversalClient
	ttl        time.Duration
	prefix     string
	maxRetries int
}

// NewRedisCartRepository stores carts as JSON under "<prefix>:<sessionID>".
// Every write resets the key to cfg.TTL, or cart.DefaultTTL when unset.
func NewRedisCartRepository(rdb redis.UniversalClient, cfg model.CartConfig) *RedisCartRepository {
	r := &RedisCartRepository{
		rdb:        rdb,
		ttl:        cfg.TTL,
		prefix:     cfg.KeyPrefix,
		maxRetries: cfg.MaxUpdateRetries,
	}
	if r.ttl <= 0 {
		r.ttl = cart.DefaultTTL
	}
	if r.prefix == "" {
		r.prefix = "cart"
	}
	if r.maxRetries <= 0 {
		r.maxRetries = defaultMaxRetries
	}
	return r
}

func (r *RedisCartRepository) cartKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, sessionID)
}

func notFound(sessionID string) error {
	return errx.NotFound(fmt.Errorf("%w: %s", model.ErrCartNotFound, sessionID), errx.RedisNotFoundMessage)
}

func (r *RedisCartRepository) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	key := r.cartKey(sessionID)
	c, err := load(ctx, r.rdb, key)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(sessionID)
	}
	return c, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// load returns nil without error when key is missing.
func load(ctx context.Context, rdb getter, key string) (*model.Cart, error) {
	b, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load cart from redis")
		return nil, errx.WrapRedis(err)
	}

	var c model.Cart
	if err := json.Unmarshal(b, &c); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to unmarshal cart")
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &c, nil
}

func (r *RedisCartRepository) encode(c *model.Cart) ([]byte, error) {
	if c == nil || c.SessionID == "" {
		return nil, errx.InvalidArgument(model.ErrSessionIDMissing, "cart has no session id")
	}
	b, err := json.Marshal(c)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", c.SessionID).Msg("failed to marshal cart")
		return nil, fmt.Errorf("marshal cart: %w", err)
	}
	return b, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, c *model.Cart) error {
	b, err := r.encode(c)
	if err != nil {
		return err
	}
	key := r.cartKey(c.SessionID)
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save cart to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	key := r.cartKey(sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete cart from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

// Update runs fn inside a WATCH/MULTI transaction on the session key and
// retries when another writer wins the race. fn sees nil for a missing cart
// and may return nil to delete it. Errors from fn are returned unchanged and
// nothing is written.
func (r *RedisCartRepository) Update(ctx context.Context, sessionID string, fn func(current *model.Cart) (*model.Cart, error)) (*model.Cart, error) {
	key := r.cartKey(sessionID)

	var (
		next  *model.Cart
		fnErr error
	)
	txf := func(tx *redis.Tx) error {
		current, err := load(ctx, tx, key)
		if err != nil {
			return err
		}

		next, fnErr = fn(current)
		if fnErr != nil {
			return fnErr
		}

		var b []byte
		if next != nil {
			if next.SessionID != sessionID {
				fnErr = errx.InvalidArgument(fmt.Errorf("%w: session id %q does not match %q", model.ErrInvalidCart, next.SessionID, sessionID), "cart session mismatch")
				return fnErr
			}
			if b, err = r.encode(next); err != nil {
				fnErr = err
				return err
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if next == nil {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, b, r.ttl)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		fnErr = nil
		err := r.rdb.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return next, nil
		case fnErr != nil:
			return nil, fnErr
		case errors.Is(err, redis.TxFailedErr):
			logx.Debug().Str("key", key).Int("attempt", attempt).Msg("cart changed during update, retrying")
			continue
		default:
			var e *errx.Error
			if errors.As(err, &e) {
				return nil, err
			}
			logx.Error().Err(err).Str("key", key).Msg("failed to update cart in redis")
			return nil, errx.WrapRedis(err)
		}
	}

	logx.Warn().Str("key", key).Int("attempts", r.maxRetries).Msg("gave up updating cart after repeated conflicts")
	return nil, errx.Conflict(redis.TxFailedErr, errx.ConflictMessage)
}

var _ model.CartRepository = (*RedisCartRepository)(nil)
