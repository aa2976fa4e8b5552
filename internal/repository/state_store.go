package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// stateStore is the shared plumbing for the session-scoped JSON values
// (booking draft, cart, pending prompt, order summary). Each value lives
// under one key per session and carries the session TTL so it can never
// outlive the session that owns it.
type stateStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// setJSON marshals v and stores it under key with the session TTL.
func (s stateStore) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, data, s.ttl).Err()
}

// getJSON loads key into dst. missing is returned when the key is absent.
func (s stateStore) getJSON(ctx context.Context, key string, dst any, missing error) error {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return missing
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func (s stateStore) del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
