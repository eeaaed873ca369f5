package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Invalidator drops cached render output when its source data changes.
type Invalidator interface {
	Invalidate(ctx context.Context, key string) error
}

// RedisInvalidator deletes cache keys from Redis.
type RedisInvalidator struct {
	client *redis.Client
}

// NewRedisInvalidator builds a Redis-backed invalidator.
func NewRedisInvalidator(addr, password string) *RedisInvalidator {
	return &RedisInvalidator{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// NewRedisInvalidatorFromClient wraps an existing client, used by tests.
func NewRedisInvalidatorFromClient(client *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{client: client}
}

// Invalidate removes the key. A missing key is not an error.
func (i *RedisInvalidator) Invalidate(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := i.client.Del(ctx, key).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}

// Noop is used when no Redis is configured.
type Noop struct{}

// Invalidate does nothing.
func (Noop) Invalidate(ctx context.Context, key string) error { return nil }

var (
	_ Invalidator = (*RedisInvalidator)(nil)
	_ Invalidator = Noop{}
)
