package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edenspa/eden-spa-api/internal/booking"
)

// DraftStore holds the in-progress booking draft for each session. A
// stored draft means the booking dialog is open; deleting it closes the
// dialog and discards every selection at once.
type DraftStore struct{ stateStore }

func NewDraftStore(rdb *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{stateStore{rdb: rdb, ttl: ttl}}
}

func draftKey(jti string) string { return "draft:" + jti }

func (s *DraftStore) Save(ctx context.Context, jti string, d booking.Draft) error {
	return s.setJSON(ctx, draftKey(jti), d)
}

// Get returns the session's open draft, or ErrDraftNotFound when the
// dialog is closed.
func (s *DraftStore) Get(ctx context.Context, jti string) (booking.Draft, error) {
	var d booking.Draft
	err := s.getJSON(ctx, draftKey(jti), &d, ErrDraftNotFound)
	return d, err
}

func (s *DraftStore) Delete(ctx context.Context, jti string) error {
	return s.del(ctx, draftKey(jti))
}
