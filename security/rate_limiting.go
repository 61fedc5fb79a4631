package security

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles booking submissions per caller. It is keyed by user
// id when authenticated, falling back to client IP. Counters live in Redis
// so the limit holds across restarts.
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		limit:  limit,
		window: time.Minute,
	}
}

// Middleware returns a route middleware for the PocketBase router.
func (r *RateLimiter) Middleware() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		key := fmt.Sprintf("ratelimit:ip:%s", e.RealIP())
		if e.Auth != nil {
			key = fmt.Sprintf("ratelimit:user:%s", e.Auth.Id)
		}

		ctx := e.Request.Context()
		count, err := r.redis.Incr(ctx, key).Result()
		if err == nil {
			if count == 1 {
				r.redis.Expire(ctx, key, r.window)
			}
			if count > int64(r.limit) {
				return apis.NewApiError(http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			}
		}
		// Redis errors fail open; throttling is not worth refusing bookings.

		return e.Next()
	}
}
