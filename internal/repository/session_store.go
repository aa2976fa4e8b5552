package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the set of live sessions in Redis. A session exists
// while its key does: login writes `session:<jti>` holding the account
// identifier with the session TTL, logout deletes it, and expiry removes
// it on its own. A JWT whose jti has no key is dead regardless of its
// exp claim.
//
// The store also owns the one-shot booking-success flag, which shares the
// session lifetime and is consumed atomically with GETDEL.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(jti string) string { return "session:" + jti }

func flagKey(jti string) string { return fmt.Sprintf("flag:booking_success:%s", jti) }

// TTL returns the configured session lifetime. Sibling stores use it so
// draft, cart, prompt and order keys never outlive the session.
func (s *SessionStore) TTL() time.Duration { return s.ttl }

// Create registers a live session for the token id.
func (s *SessionStore) Create(ctx context.Context, jti, identifier string) error {
	return s.rdb.Set(ctx, sessionKey(jti), identifier, s.ttl).Err()
}

// Get returns the account identifier bound to a live session, or
// ErrSessionNotFound when the session was ended or expired.
func (s *SessionStore) Get(ctx context.Context, jti string) (string, error) {
	val, err := s.rdb.Get(ctx, sessionKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return val, err
}

// Delete ends the session and drops every key scoped to it, so a later
// login with the same account starts from a clean slate.
func (s *SessionStore) Delete(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx,
		sessionKey(jti),
		flagKey(jti),
		draftKey(jti),
		cartKey(jti),
		promptKey(jti),
		orderKey(jti),
	).Err()
}

// SetBookingFlag raises the booking-success flag for the session.
func (s *SessionStore) SetBookingFlag(ctx context.Context, jti string) error {
	return s.rdb.Set(ctx, flagKey(jti), "1", s.ttl).Err()
}

// ConsumeBookingFlag reads and clears the booking-success flag in one
// atomic step. It reports whether the flag was set; a second consumption
// always reports false.
func (s *SessionStore) ConsumeBookingFlag(ctx context.Context, jti string) (bool, error) {
	_, err := s.rdb.GetDel(ctx, flagKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
