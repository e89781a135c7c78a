package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// KeepTTL makes Set replace an existing key retaining its remaining expiry, a missing key is left absent
const KeepTTL = redis.KeepTTL

// Redis is a string cache backed by a redis client, every call is bounded by timeout
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedis(client *redis.Client, timeout time.Duration) *Redis {
	return &Redis{client: client, timeout: timeout}
}

// Get returns the value stored under key, found is false when the key is absent or expired
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	tcCtx, tcCancel := context.WithTimeout(ctx, r.timeout)
	defer tcCancel()

	value, err := r.client.Get(tcCtx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("get %s: %w", key, err)
	default:
		return value, true, nil
	}
}

// Set stores value under key expiring after ttl, see KeepTTL
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	tcCtx, tcCancel := context.WithTimeout(ctx, r.timeout)
	defer tcCancel()

	if ttl == KeepTTL {
		err := r.client.SetArgs(tcCtx, key, value, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	}
	if err := r.client.Set(tcCtx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	tcCtx, tcCancel := context.WithTimeout(ctx, r.timeout)
	defer tcCancel()

	if err := r.client.Del(tcCtx, keys...).Err(); err != nil {
		return fmt.Errorf("delete %v: %w", keys, err)
	}
	return nil
}
