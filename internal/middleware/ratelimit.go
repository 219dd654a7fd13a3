// Package middleware holds the HTTP middleware applied in front of the
// routes. Rate limiting is the only middleware beyond echo's built-ins; it
// counts requests per client IP in fixed redis windows and answers 429 once
// the window's budget is spent. When redis is unavailable the limiter steps
// aside instead of blocking traffic.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"showbill/internal/config"
)

// RateLimit builds the limiter middleware. A nil redis client or a disabled
// config yields a pass-through.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	windowSecs := int64(cfg.Window / time.Second)
	if windowSecs < 1 {
		windowSecs = 1
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bucket := time.Now().Unix() / windowSecs
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), bucket)

			ctx := c.Request().Context()
			pipe := rdb.TxPipeline()
			count := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, cfg.Window)
			if _, err := pipe.Exec(ctx); err != nil {
				// Redis trouble must not take the site down.
				return next(c)
			}
			if count.Val() > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After",
					fmt.Sprintf("%d", windowSecs))
				return c.String(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
