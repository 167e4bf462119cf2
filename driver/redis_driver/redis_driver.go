// Package redis_driver provides the external key-value store access for the
// cache layer.
package redis_driver

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriver wraps a go-redis client with the small surface the cache
// gateway needs.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriverWithURL creates a new Redis driver from a URL
// (redis:// or rediss://, credentials included).
func NewRedisDriverWithURL(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	return &RedisDriver{client: client}, nil
}

// NewRedisDriver creates a driver from an existing client. Used by tests.
func NewRedisDriver(client *redis.Client) *RedisDriver {
	return &RedisDriver{client: client}
}

// Close closes the Redis connection.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// Ping verifies connectivity.
func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Get returns the value for key. A missing key returns redis.Nil.
func (d *RedisDriver) Get(ctx context.Context, key string) (string, error) {
	return d.client.Get(ctx, key).Result()
}

// Set stores value under key with the given TTL.
func (d *RedisDriver) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return d.client.Set(ctx, key, value, ttl).Err()
}

// Del removes key.
func (d *RedisDriver) Del(ctx context.Context, key string) error {
	return d.client.Del(ctx, key).Err()
}

// IsNil reports whether err is the go-redis missing-key sentinel.
func IsNil(err error) bool {
	return err == redis.Nil
}
