package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront/internal/redissvc"
)

// RedisSlotStore keeps slots as plain Redis string keys without expiry.
type RedisSlotStore struct {
	svc *redissvc.RedisService
}

func NewRedisSlotStore(svc *redissvc.RedisService) *RedisSlotStore {
	return &RedisSlotStore{svc: svc}
}

func (s *RedisSlotStore) Load(ctx context.Context, key string) (string, error) {
	v, err := s.svc.Rdb().Get(ctx, s.svc.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSlotEmpty
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *RedisSlotStore) Save(ctx context.Context, key, value string) error {
	if err := s.svc.Rdb().Set(ctx, s.svc.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
