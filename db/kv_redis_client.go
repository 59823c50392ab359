package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// KVRedisClient backs RedisClient with a real Redis server.
type KVRedisClient struct {
	client *redis.Client
}

// NewKVRedisClient wraps an existing go-redis client.
func NewKVRedisClient(client *redis.Client) *KVRedisClient {
	return &KVRedisClient{client: client}
}

// Set sets a key-value pair in Redis with no expiry.
func (r *KVRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key. Missing keys yield ErrNotFound.
func (r *KVRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return val, err
}

func (r *KVRedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// Keys lists keys matching pattern using SCAN so large stores do not block.
func (r *KVRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		out    []string
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
		}
		out = append(out, keys...)
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}

func (r *KVRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *KVRedisClient) Close() error {
	return r.client.Close()
}
