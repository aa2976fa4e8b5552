package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edenspa/eden-spa-api/internal/model"
)

// PromptStore holds at most one pending prompt per session. Put always
// overwrites, which is what gives the dialog its replace-on-new behavior:
// accepting a prompt whose id no longer matches the stored one fails with
// ErrPromptNotFound instead of firing a superseded action.
type PromptStore struct{ stateStore }

func NewPromptStore(rdb *redis.Client, ttl time.Duration) *PromptStore {
	return &PromptStore{stateStore{rdb: rdb, ttl: ttl}}
}

func promptKey(jti string) string { return "prompt:" + jti }

func (s *PromptStore) Put(ctx context.Context, jti string, p model.Prompt) error {
	return s.setJSON(ctx, promptKey(jti), p)
}

func (s *PromptStore) Get(ctx context.Context, jti string) (model.Prompt, error) {
	var p model.Prompt
	err := s.getJSON(ctx, promptKey(jti), &p, ErrPromptNotFound)
	return p, err
}

func (s *PromptStore) Delete(ctx context.Context, jti string) error {
	return s.del(ctx, promptKey(jti))
}
