package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Set stores a key-value pair with TTL.
func (r *redisImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key.
func (r *redisImpl) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Delete removes keys.
func (r *redisImpl) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// Close closes the Redis connection.
func (r *redisImpl) Close() error {
	return r.client.Close()
}

// Ping checks if Redis is reachable.
func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// GetClient returns the underlying go-redis client for advanced operations.
func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
