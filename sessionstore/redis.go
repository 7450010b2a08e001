package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/bakebites/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "visitor:"

// RedisStore keeps each visitor session as one JSON value whose TTL is
// refreshed on every save.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*models.VisitorSession, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var visitor models.VisitorSession
	if err := json.Unmarshal(data, &visitor); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &visitor, nil
}

func (s *RedisStore) Save(ctx context.Context, visitor *models.VisitorSession) error {
	data, err := json.Marshal(visitor)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+visitor.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
