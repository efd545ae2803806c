package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestQuotaConsume_EnvironmentBypass(t *testing.T) {
	for _, env := range []string{"", "test", "development"} {
		t.Run("env="+env, func(t *testing.T) {
			t.Setenv("APP_ENV", env)
			res, err := FollowQuota.Consume(context.Background(), nil, "user:1")
			assert.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, FollowQuota.Limit, res.Remaining)
		})
	}
}

func TestQuotaConsume_NilRedis(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	res, err := FollowQuota.Consume(context.Background(), nil, "user:1")
	assert.ErrorIs(t, err, errNoRateLimitStore)
	assert.False(t, res.Allowed)
}

func TestQuotaConsume_CountsWithinWindow(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr, rdb := newTestRedis(t)
	ctx := context.Background()
	q := Quota{Resource: "like", Limit: 2, Window: time.Minute}

	res, err := q.Consume(ctx, rdb, "user:7")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)

	res, err = q.Consume(ctx, rdb, "user:7")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	res, err = q.Consume(ctx, rdb, "user:7")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Greater(t, res.RetryAfter, time.Duration(0))
	assert.True(t, mr.TTL("rl:like:user:7") > 0)

	// Other subjects keep their own budget.
	res, err = q.Consume(ctx, rdb, "user:8")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	mr.FastForward(2 * time.Minute)
	res, err = q.Consume(ctx, rdb, "user:7")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRateLimit_SharedResourceAcrossRoutes(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, rdb := newTestRedis(t)
	q := Quota{Resource: "like", Limit: 1, Window: time.Minute}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(42))
		return c.Next()
	})
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Post("/like", RateLimit(rdb, q), ok)
	app.Post("/unlike", RateLimit(rdb, q), ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/like", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/unlike", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestRateLimit_KeysAnonymousByIP(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr, rdb := newTestRedis(t)

	app := fiber.New()
	app.Post("/follow", RateLimit(rdb, Quota{Resource: "follow", Limit: 5, Window: time.Minute}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/follow", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "rl:follow:ip:"), keys[0])
}

func TestRateLimit_FailPolicy(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	tests := []struct {
		name   string
		policy FailPolicy
		want   int
	}{
		{"Open", FailOpen, http.StatusOK},
		{"Closed", FailClosed, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			q := Quota{Resource: "like", Limit: 1, Window: time.Minute, Policy: tt.policy}
			app.Post("/like", RateLimit(nil, q), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/like", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
