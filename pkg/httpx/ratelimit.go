package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RateLimit struct {
	Scope  string
	Limit  int64
	Period time.Duration
}

// RateLimiter counts requests per client IP in a fixed Redis window.
// A nil client or a Redis error lets the request through.
func RateLimiter(rdb *redis.Client, rl RateLimit, log *slog.Logger) gin.HandlerFunc {
	if rl.Limit <= 0 {
		rl.Limit = 5
	}
	if rl.Period <= 0 {
		rl.Period = time.Minute
	}

	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rate_limit:" + rl.Scope + ":" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("rate limiter unavailable", slog.Any("err", err))
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(ctx, key, rl.Period)
		}

		if count > rl.Limit {
			Fail(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
			return
		}

		c.Next()
	}
}
