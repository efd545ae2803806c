package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy decides what happens to a request when Redis cannot be reached.
type FailPolicy int

const (
	// FailOpen lets the request through.
	FailOpen FailPolicy = iota
	// FailClosed answers 503.
	FailClosed
)

// Quota is a request budget per subject (user or IP) over a fixed window.
// Routes naming the same Resource share one counter.
type Quota struct {
	Resource string
	Limit    int
	Window   time.Duration
	Policy   FailPolicy
}

// Social-graph mutation budgets. Like and unlike share one counter so toggling
// cannot double the allowance.
var (
	FollowQuota  = Quota{Resource: "follow", Limit: 30, Window: time.Minute}
	LikeQuota    = Quota{Resource: "like", Limit: 60, Window: time.Minute}
	PublishQuota = Quota{Resource: "publish", Limit: 20, Window: time.Minute}
)

var errNoRateLimitStore = errors.New("rate limit store unavailable")

// QuotaResult is the outcome of one counted request.
type QuotaResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

func quotaKey(resource, subject string) string {
	return "rl:" + resource + ":" + subject
}

// rateLimitBypassed is true outside deployed environments (APP_ENV unset, development or test).
func rateLimitBypassed() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "test":
		return true
	}
	return false
}

// Consume counts one request by subject against q.
func (q Quota) Consume(ctx context.Context, rdb *redis.Client, subject string) (QuotaResult, error) {
	if rateLimitBypassed() {
		return QuotaResult{Allowed: true, Remaining: q.Limit}, nil
	}
	if rdb == nil {
		return QuotaResult{}, errNoRateLimitStore
	}

	key := quotaKey(q.Resource, subject)
	used, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return QuotaResult{}, fmt.Errorf("count %s: %w", key, err)
	}
	if used == 1 {
		if err := rdb.Expire(ctx, key, q.Window).Err(); err != nil {
			return QuotaResult{}, fmt.Errorf("expire %s: %w", key, err)
		}
	}

	res := QuotaResult{Allowed: used <= int64(q.Limit), Remaining: q.Limit - int(used)}
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	if !res.Allowed {
		res.RetryAfter = q.Window
		if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
			res.RetryAfter = ttl
		}
	}
	return res, nil
}

// RateLimit enforces q per authenticated user, falling back to the client IP.
func RateLimit(rdb *redis.Client, q Quota) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject := "ip:" + c.IP()
		if uid, ok := c.Locals("userID").(uint); ok && uid != 0 {
			subject = "user:" + strconv.FormatUint(uint64(uid), 10)
		}

		res, err := q.Consume(c.UserContext(), rdb, subject)
		if err != nil {
			if q.Policy == FailClosed {
				Logger.WarnContext(c.UserContext(), "rate limit store unavailable, failing closed",
					slog.String("resource", q.Resource),
					slog.String("error", err.Error()),
				)
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "rate limit unavailable",
					"code":  "RATE_LIMIT_UNAVAILABLE",
				})
			}
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(q.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(res.RetryAfter.Round(time.Second)/time.Second)))
			Logger.InfoContext(c.UserContext(), "rate limit exceeded",
				slog.String("resource", q.Resource),
				slog.String("subject", subject),
			)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
				"code":  "RATE_LIMITED",
			})
		}
		return c.Next()
	}
}
