package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLContent  = 1 * time.Minute  // current content projection (invalidated on every write)
	TTLTemplate = 10 * time.Minute // templates change rarely
	TTLDefault  = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixContent  = "content:"
	PrefixTemplate = "template:"
)

// Service is the Redis cache interface. A Service backed by a nil client
// degrades to a no-op so the backend runs without Redis.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetContent(ctx context.Context, contentID uint64, dest interface{}) error
	SetContent(ctx context.Context, contentID uint64, data interface{}) error
	InvalidateContent(ctx context.Context, contentID uint64) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// ErrMiss is returned when a key is absent (or the cache is unavailable).
var ErrMiss = redis.Nil

type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis client is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrMiss
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func contentKey(contentID uint64) string {
	return fmt.Sprintf("%s%d", PrefixContent, contentID)
}

// GetContent reads the cached current projection of a content item
func (c *redisCache) GetContent(ctx context.Context, contentID uint64, dest interface{}) error {
	return c.Get(ctx, contentKey(contentID), dest)
}

// SetContent caches the current projection of a content item
func (c *redisCache) SetContent(ctx context.Context, contentID uint64, data interface{}) error {
	return c.Set(ctx, contentKey(contentID), data, TTLContent)
}

// InvalidateContent drops the cached projection; called after every mutating
// path (edit, publish, undo, redo, restore, delete)
func (c *redisCache) InvalidateContent(ctx context.Context, contentID uint64) error {
	return c.Delete(ctx, contentKey(contentID))
}
