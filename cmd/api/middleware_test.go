package main

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"
	"time"

	"gymspot/internal/domain/storage"
	"gymspot/internal/domain/users"
	"gymspot/internal/ratelimiter"

	"github.com/stretchr/testify/assert"
)

func TestAuthTokenMiddleware(t *testing.T) {
	member := &users.User{ID: 1, Name: "Salma", Email: "salma@example.com", Role: users.RoleUser}
	app := newTestApplication(t, &storage.Container{Users: newFakeUsers(member)})
	mux := app.mount()

	t.Run("should reject a request without a token", func(t *testing.T) {
		rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/users/me", ""), mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("should reject a malformed header", func(t *testing.T) {
		req := newJSONRequest(http.MethodGet, "/v1/users/me", "")
		req.Header.Set("Authorization", "Token abc")
		rr := executeRequest(req, mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("should reject a refresh token used as access token", func(t *testing.T) {
		_, refresh, err := app.authenticator.GenerateTokens(member.ID, string(member.Role))
		assert.NoError(t, err)
		req := newJSONRequest(http.MethodGet, "/v1/users/me", "")
		req.Header.Set("Authorization", "Bearer "+refresh)
		rr := executeRequest(req, mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("should reject a token for a deleted user", func(t *testing.T) {
		ghost := &users.User{ID: 404, Role: users.RoleUser}
		rr := executeRequest(bearer(t, app, ghost, newJSONRequest(http.MethodGet, "/v1/users/me", "")), mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("should allow a valid token", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, member, newJSONRequest(http.MethodGet, "/v1/users/me", "")), mux)
		assert.Equal(t, http.StatusOK, rr.Code)

		var got users.User
		decodeData(t, rr, &got)
		assert.Equal(t, "salma@example.com", got.Email)
	})
}

func TestRequireRole(t *testing.T) {
	member := &users.User{ID: 1, Role: users.RoleUser}
	owner := &users.User{ID: 2, Role: users.RoleGymOwner}
	admin := &users.User{ID: 3, Role: users.RoleAdmin}
	app := newTestApplication(t, &storage.Container{
		Users:  newFakeUsers(member, owner, admin),
		Venues: newFakeVenues(),
	})
	mux := app.mount()

	t.Run("members cannot create venues", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, member, newJSONRequest(http.MethodPost, "/v1/venues", `{}`)), mux)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "access denied", decodeError(t, rr).Message)
	})

	t.Run("owners reach the handler", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodPost, "/v1/venues", `{}`)), mux)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("admins pass every role check", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, admin, newJSONRequest(http.MethodPost, "/v1/venues", `{}`)), mux)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("owners cannot reach admin routes", func(t *testing.T) {
		rr := executeRequest(bearer(t, app, owner, newJSONRequest(http.MethodGet, "/v1/admin/stats", "")), mux)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestBasicAuthMiddleware(t *testing.T) {
	app := newTestApplication(t, &storage.Container{})
	mux := app.mount()

	rr := executeRequest(newJSONRequest(http.MethodGet, "/v1/health", ""), mux)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")

	req := newJSONRequest(http.MethodGet, "/v1/health", "")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:wrong")))
	rr = executeRequest(req, mux)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = newJSONRequest(http.MethodGet, "/v1/health", "")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	rr = executeRequest(req, mux)
	assert.Equal(t, http.StatusOK, rr.Code)

	var data map[string]string
	decodeData(t, rr, &data)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "test", data["env"])
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return false, 0, errors.New("redis down")
}

func TestRateLimiterMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("should deny requests over the limit with Retry-After", func(t *testing.T) {
		app := newTestApplication(t, &storage.Container{})
		app.config.rateLimiter = ratelimiter.Config{Enabled: true, RequestsPerTimeFrame: 2, TimeFrame: 5 * time.Second}
		limiter := ratelimiter.NewFixedWindowLimiter(2, 5*time.Second)
		defer limiter.Close()
		app.rateLimiter = limiter

		handler := app.RateLimiterMiddleware(ok)

		for i := 0; i < 2; i++ {
			req := newJSONRequest(http.MethodGet, "/", "")
			req.RemoteAddr = "192.168.1.10:5555"
			assert.Equal(t, http.StatusOK, executeRequest(req, handler).Code)
		}

		req := newJSONRequest(http.MethodGet, "/", "")
		req.RemoteAddr = "192.168.1.10:6666"
		rr := executeRequest(req, handler)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))

		// another client still has budget
		req = newJSONRequest(http.MethodGet, "/", "")
		req.RemoteAddr = "192.168.1.11:5555"
		assert.Equal(t, http.StatusOK, executeRequest(req, handler).Code)
	})

	t.Run("should let requests through when the limiter errors", func(t *testing.T) {
		app := newTestApplication(t, &storage.Container{})
		app.config.rateLimiter = ratelimiter.Config{Enabled: true}
		app.rateLimiter = failingLimiter{}

		rr := executeRequest(newJSONRequest(http.MethodGet, "/", ""), app.RateLimiterMiddleware(ok))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("should skip the limiter when disabled", func(t *testing.T) {
		app := newTestApplication(t, &storage.Container{})
		app.rateLimiter = failingLimiter{}

		rr := executeRequest(newJSONRequest(http.MethodGet, "/", ""), app.RateLimiterMiddleware(ok))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestClientIP(t *testing.T) {
	req := newJSONRequest(http.MethodGet, "/", "")
	req.RemoteAddr = "10.1.2.3:4567"
	assert.Equal(t, "10.1.2.3", clientIP(req))

	req.RemoteAddr = "10.1.2.3"
	assert.Equal(t, "10.1.2.3", clientIP(req))
}
