package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ArtifactCache stores rendered artifacts (PDF bytes, thermal text) keyed
// by plan fingerprint.
type ArtifactCache interface {
	Get(ctx context.Context, fingerprint string) ([]byte, bool, error)
	Set(ctx context.Context, fingerprint string, data []byte, ttl time.Duration) error
	Close() error
}

// RedisArtifactCache implements ArtifactCache using Redis. This is suitable
// for distributed deployments where multiple instances share reprint state.
type RedisArtifactCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisArtifactConfig holds Redis connection configuration
type RedisArtifactConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisArtifactCache creates a new Redis-based artifact cache
func NewRedisArtifactCache(cfg RedisArtifactConfig) (*RedisArtifactCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisArtifactCache{
		client:    client,
		keyPrefix: "render:artifact:",
	}, nil
}

// NewRedisArtifactCacheWithClient creates a cache with an existing client.
// This is useful for testing or when sharing a client across components.
func NewRedisArtifactCacheWithClient(client *redis.Client, keyPrefix string) *RedisArtifactCache {
	if keyPrefix == "" {
		keyPrefix = "render:artifact:"
	}
	return &RedisArtifactCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached artifact for the fingerprint
func (c *RedisArtifactCache) Get(ctx context.Context, fingerprint string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+fingerprint).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get artifact: %w", err)
	}
	return data, true, nil
}

// Set stores the artifact with a TTL
func (c *RedisArtifactCache) Set(ctx context.Context, fingerprint string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+fingerprint, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store artifact: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisArtifactCache) Close() error {
	return c.client.Close()
}

// Ensure RedisArtifactCache implements ArtifactCache
var _ ArtifactCache = (*RedisArtifactCache)(nil)
