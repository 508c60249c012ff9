package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisService wraps a client. Keys handed to Key are namespaced with prefix.
func NewRedisService(rdb *redis.Client, prefix string) *RedisService {
	return &RedisService{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Key(name string) string {
	if a.prefix == "" {
		return name
	}
	return a.prefix + ":" + name
}

func (a *RedisService) Ping(ctx context.Context) error {
	return a.rdb.Ping(ctx).Err()
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
