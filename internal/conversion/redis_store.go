package conversion

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key holding the shared rate.
const DefaultRedisKey = "dashboard:usd_rate"

var _ Store = (*RedisStore)(nil)

// RedisStore keeps the rate in Redis so every dashboard instance converts with the same value.
// The key carries no expiry; it lives until the next publish overwrites it.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a RedisStore writing to key, or DefaultRedisKey when key is empty.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Set replaces the stored rate.
func (s *RedisStore) Set(ctx context.Context, rate float64) error {
	val := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := s.client.Set(ctx, s.key, val, 0).Err(); err != nil {
		return fmt.Errorf("store usd rate: %w", err)
	}
	return nil
}

// Get returns the stored rate, or 0 when the key is missing.
func (s *RedisStore) Get(ctx context.Context) (float64, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load usd rate: %w", err)
	}
	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("parse stored usd rate %q: %w", val, err)
	}
	return rate, nil
}
