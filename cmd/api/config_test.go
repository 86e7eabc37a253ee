package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := configFrom(newViper())

	assert.Equal(t, ":8080", cfg.addr)
	assert.Equal(t, int32(30), cfg.db.maxConns)
	assert.Equal(t, "memory", cfg.rateLimiter.Backend)
	assert.Equal(t, 5*time.Second, cfg.rateLimiter.TimeFrame)
	assert.Equal(t, 72*time.Hour, cfg.auth.token.accessTokenExp)
	assert.False(t, cfg.rateLimiter.Enabled)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("RATE_LIMITER_ENABLED", "true")
	t.Setenv("RATE_LIMITER_BACKEND", "redis")
	t.Setenv("RATE_LIMITER_REQUESTS_COUNT", "10")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DB_MAX_CONNS", "5")

	cfg := configFrom(newViper())

	assert.Equal(t, ":9090", cfg.addr)
	assert.True(t, cfg.rateLimiter.Enabled)
	assert.Equal(t, "redis", cfg.rateLimiter.Backend)
	assert.Equal(t, 10, cfg.rateLimiter.RequestsPerTimeFrame)
	assert.Equal(t, 2, cfg.redis.db)
	assert.Equal(t, int32(5), cfg.db.maxConns)
}
