package note

import (
	"context"
	"encoding/json"
	"time"
)

// fetch decodes the entry under key into dst, reporting whether it was a usable hit
func (c *Coordinator) fetch(ctx context.Context, key string, dst any) bool {
	get, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Errorw("cache", "op", "get", "key", key, "ERROR", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(get), dst); err != nil {
		c.log.Errorw("cache", "op", "decode", "key", key, "ERROR", err)
		return false
	}
	return true
}

func (c *Coordinator) put(ctx context.Context, key string, v any) {
	c.set(ctx, key, v, c.ttl)
}

// overwrite replaces an entry keeping its expiry, so patched entries still expire on time
func (c *Coordinator) overwrite(ctx context.Context, key string, v any) {
	c.set(ctx, key, v, keepTTL)
}

func (c *Coordinator) set(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Errorw("cache", "op", "encode", "key", key, "ERROR", err)
		return
	}
	if err := c.cache.Set(ctx, key, string(data), ttl); err != nil {
		c.log.Errorw("cache", "op", "set", "key", key, "ERROR", err)
	}
}

func (c *Coordinator) drop(ctx context.Context, keys ...string) {
	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.log.Errorw("cache", "op", "delete", "keys", keys, "ERROR", err)
	}
}
