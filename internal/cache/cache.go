package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a tagged response cache for catalog listings. Each stored key is
// registered in the set of every tag it carries, so a purge by tag can
// delete all entries touching a given event, venue or performer.
//
// Every method is best-effort: a Redis failure is logged and reported as a
// miss or ignored, it never affects the primary operation.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New builds a cache over an optional Redis client. A nil client disables
// caching entirely (all lookups miss, writes and purges are no-ops).
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		log.Println("cache: redis not configured, caching disabled")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Enabled() bool { return c != nil && c.rdb != nil }

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get failed key=%s err=%v", key, err)
		}
		return nil, false
	}
	return raw, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, tags ...string) {
	if !c.Enabled() {
		return
	}
	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, value, c.ttl)
	for _, tag := range tags {
		tagKey := "tag:" + tag
		pipe.SAdd(ctx, tagKey, key)
		// Tag sets outlive their members slightly so purges stay cheap.
		pipe.Expire(ctx, tagKey, c.ttl*2)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("cache: set failed key=%s err=%v", key, err)
	}
}

// PurgeTags deletes every cached entry registered under any of the tags.
// This is the fire-and-forget cache purge side effect: the returned error is
// for logging only and callers must not fail on it.
func (c *Cache) PurgeTags(ctx context.Context, tags ...string) error {
	if !c.Enabled() {
		return nil
	}
	for _, tag := range tags {
		tagKey := "tag:" + tag
		keys, err := c.rdb.SMembers(ctx, tagKey).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if err := c.rdb.Del(ctx, tagKey).Err(); err != nil {
			return err
		}
	}
	return nil
}
