package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const entryTTL = 5 * time.Minute

// ListsKey holds the serialized payload of the full list collection.
const ListsKey = "lists"

// ItemsKey returns the cache key for one list's items.
func ItemsKey(listID string) string {
	return "items:" + listID
}

// Cache is a thin read-through layer over Redis. A nil *Cache is valid and
// disables caching, so handlers never branch on whether Redis is configured.
type Cache struct {
	rdb *redis.Client
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, addr string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{rdb: rdb}, nil
}

// Get returns the cached payload for key, or ok=false on miss, error or when
// caching is disabled. Redis failures read as misses; the store is the source
// of truth.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores a payload under key with the standard TTL, best effort.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key, payload, entryTTL)
}

// Invalidate drops the given keys after a mutation, best effort.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}

// Close releases the client. Safe on a nil Cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
