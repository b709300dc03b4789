// Package cache is an optional Redis cache-aside layer. When REDIS_ADDR is
// unset (or Redis is unreachable at startup) every operation is a no-op and
// callers fall through to the live path.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR not set, caching disabled")
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Println("⚠️ Redis unreachable, caching disabled:", err)
		return &Cache{}
	}

	log.Println("✅ Redis connected")
	return &Cache{rdb: rdb}
}

func (c *Cache) Enabled() bool { return c != nil && c.rdb != nil }

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if !c.Enabled() {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Println("⚠️ Redis set failed:", err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("⚠️ Redis del failed:", err)
	}
}
