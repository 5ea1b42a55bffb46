// Package store provides production ProfileStore implementations.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

// RedisProfileStore implements profilersdk.ProfileStore on Redis.
// Keys are namespaced as "{prefix}:{key}".
type RedisProfileStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisStoreConfig configures the Redis store.
type RedisStoreConfig struct {
	Prefix string        // key prefix, default "pib"
	TTL    time.Duration // TTL for entries, 0 = no expiry
}

// NewRedisProfileStore creates a ProfileStore backed by Redis. Works with a
// single client, cluster client or ring.
func NewRedisProfileStore(client redis.UniversalClient, config ...RedisStoreConfig) *RedisProfileStore {
	cfg := RedisStoreConfig{Prefix: "pib"}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "pib"
	}
	return &RedisProfileStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
	}
}

func (s *RedisProfileStore) fullKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *RedisProfileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisProfileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.fullKey(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisProfileStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.fullKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisProfileStore) Close() error {
	return s.client.Close()
}

// Compile-time interface check.
var _ profilersdk.ProfileStore = (*RedisProfileStore)(nil)
