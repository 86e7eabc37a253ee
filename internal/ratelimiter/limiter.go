package ratelimiter

import (
	"context"
	"time"
)

// Limiter decides whether the caller identified by key may make another
// request. When it may not, retryAfter is how long until the window resets.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
	// Backend is "memory" or "redis".
	Backend string
}
