package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edenspa/eden-spa-api/internal/cart"
)

// CartStore holds each session's shopping cart. An absent key reads back
// as an empty cart, so callers never see a missing-cart error.
type CartStore struct{ stateStore }

func NewCartStore(rdb *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{stateStore{rdb: rdb, ttl: ttl}}
}

func cartKey(jti string) string { return "cart:" + jti }

func (s *CartStore) Save(ctx context.Context, jti string, c cart.Cart) error {
	return s.setJSON(ctx, cartKey(jti), c)
}

// Get returns the session's cart. A session that never added anything
// gets an empty cart back, not an error.
func (s *CartStore) Get(ctx context.Context, jti string) (cart.Cart, error) {
	var c cart.Cart
	if err := s.getJSON(ctx, cartKey(jti), &c, nil); err != nil {
		return cart.Cart{}, err
	}
	return c, nil
}

func (s *CartStore) Delete(ctx context.Context, jti string) error {
	return s.del(ctx, cartKey(jti))
}
