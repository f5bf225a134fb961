package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pixelgram/internal/middleware"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Key names and lifetimes of cached values.
const (
	DirectoryKey = "users:directory"
	DirectoryTTL = 30 * time.Second
)

// JSON is a cache-aside helper that stores JSON values in Redis and collapses
// concurrent misses for the same key into one load. A nil client disables
// caching but still collapses loads.
type JSON struct {
	rdb   *redis.Client
	group singleflight.Group
}

// NewJSON returns a JSON cache backed by rdb, which may be nil.
func NewJSON(rdb *redis.Client) *JSON {
	return &JSON{rdb: rdb}
}

// GetOrLoad decodes key into dst, or calls load, stores its result under key
// for ttl, and decodes it into dst. Cache failures fall through to load.
func (c *JSON) GetOrLoad(ctx context.Context, key string, ttl time.Duration, dst any, load func(ctx context.Context) (any, error)) error {
	if c.rdb != nil {
		raw, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			if jerr := json.Unmarshal(raw, dst); jerr == nil {
				return nil
			}
		} else if !errors.Is(err, redis.Nil) {
			middleware.Logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		val, err := load(ctx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		if c.rdb != nil {
			if serr := c.rdb.Set(ctx, key, raw, ttl).Err(); serr != nil {
				middleware.Logger.WarnContext(ctx, "cache write failed", "key", key, "error", serr)
			}
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), dst)
}

// Invalidate drops key from the cache.
func (c *JSON) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "cache invalidate failed", "keys", keys, "error", err)
	}
}
