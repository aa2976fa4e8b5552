package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edenspa/eden-spa-api/internal/cart"
)

// OrderStore holds the order summary produced by an accepted checkout
// until the customer dismisses it. The cart itself is only cleared at
// dismissal time, so an undelivered summary never loses the cart.
type OrderStore struct{ stateStore }

func NewOrderStore(rdb *redis.Client, ttl time.Duration) *OrderStore {
	return &OrderStore{stateStore{rdb: rdb, ttl: ttl}}
}

func orderKey(jti string) string { return "order:" + jti }

func (s *OrderStore) Save(ctx context.Context, jti string, sum cart.Summary) error {
	return s.setJSON(ctx, orderKey(jti), sum)
}

// Get returns the pending order summary, or ErrOrderNotFound when no
// checkout is awaiting dismissal.
func (s *OrderStore) Get(ctx context.Context, jti string) (cart.Summary, error) {
	var sum cart.Summary
	err := s.getJSON(ctx, orderKey(jti), &sum, ErrOrderNotFound)
	return sum, err
}

func (s *OrderStore) Delete(ctx context.Context, jti string) error {
	return s.del(ctx, orderKey(jti))
}
