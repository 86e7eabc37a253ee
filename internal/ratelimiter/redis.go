package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisRateLimiter is a fixed-window limiter shared by every API instance.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

// Allow creates the window key with its TTL and counts the request in one
// MULTI/EXEC, so a key can never outlive its window.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := rl.prefix + key

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, rl.window)
		incr = pipe.Incr(ctx, k)
		pttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("count %s: %w", k, err)
	}

	ttl := pttl.Val()
	if ttl < 0 {
		// keys written before the window was set atomically
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			return false, 0, fmt.Errorf("expire %s: %w", k, err)
		}
		ttl = rl.window
	}

	if incr.Val() <= int64(rl.limit) {
		return true, 0, nil
	}
	return false, ttl, nil
}

// NewRedisClient builds the client used by the limiter.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
