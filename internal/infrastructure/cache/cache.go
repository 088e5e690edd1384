package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/clinicbook/receipts-api/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store is a best-effort Redis-backed cache. A nil *Store is a valid no-op
// cache, so callers never need to branch on whether Redis is configured.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis if an address is configured, returning nil otherwise
func New(cfg *config.RedisConfig) *Store {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis unavailable, caching disabled")
		return nil
	}

	return &Store{client: client, ttl: cfg.CacheTTL}
}

// Get retrieves a cached value into dest, reporting whether the key was found
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	if s == nil {
		return false, nil
	}
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a value under key for the configured TTL
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if s == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}
