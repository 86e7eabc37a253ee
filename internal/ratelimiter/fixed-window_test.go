package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Minute)
	defer rl.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _, err := rl.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	now = now.Add(15 * time.Second)
	ok, retry, err := rl.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 45*time.Second, retry)

	ok, _, _ = rl.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other keys have their own window")

	now = now.Add(45 * time.Second)
	ok, _, _ = rl.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "window reset")
}

func TestFixedWindowSweep(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)
	defer rl.Close()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	_, _, _ = rl.Allow(context.Background(), "a")
	now = now.Add(2 * time.Minute)
	rl.sweep()

	rl.Lock()
	defer rl.Unlock()
	assert.Empty(t, rl.clients)
}
