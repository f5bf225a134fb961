package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRateLimiter_Allow(t *testing.T) {
	mr, rdb := newRedis(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		env     string
		rdb     *redis.Client
		hits    int
		allowed bool
		wantErr bool
	}{
		{"test environment bypass", "test", nil, 5, true, false},
		{"development environment bypass", "development", nil, 5, true, false},
		{"nil redis in production", "production", nil, 1, false, true},
		{"within limit", "production", rdb, 2, true, false},
		{"over limit", "production", rdb, 3, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr.FlushAll()
			l := NewRateLimiter(tt.rdb, tt.env, FailOpen)

			var allowed bool
			var err error
			for i := 0; i < tt.hits; i++ {
				allowed, err = l.Allow(ctx, "login", "ip:1.2.3.4", 2, time.Minute)
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	mr, rdb := newRedis(t)
	l := NewRateLimiter(rdb, "production", FailOpen)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "register", "ip:a", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "register", "ip:a", 1, time.Minute)
	assert.False(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = l.Allow(ctx, "register", "ip:a", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_Handler(t *testing.T) {
	_, rdb := newRedis(t)

	tests := []struct {
		name     string
		limiter  *RateLimiter
		expected []int
	}{
		{"limits after quota", NewRateLimiter(rdb, "production", FailOpen), []int{200, 429}},
		{"fail open without redis", NewRateLimiter(nil, "production", FailOpen), []int{200, 200}},
		{"fail closed without redis", NewRateLimiter(nil, "production", FailClosed), []int{503, 503}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/login", tt.limiter.Handler(1, time.Minute, "login_"+tt.name), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})
			for _, want := range tt.expected {
				resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
				require.NoError(t, err)
				assert.Equal(t, want, resp.StatusCode)
			}
		})
	}
}
