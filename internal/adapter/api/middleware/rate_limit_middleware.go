package middleware

import (
	"github.com/labstack/echo/v4"

	"returnex/internal/infrastructure/ratelimit"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
	"returnex/pkg/response"
)

// RateLimit throttles anonymous portal endpoints per client IP. The verify
// endpoint is the main target: order numbers are guessable and the only
// secret is the contact string.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, wait := limiter.Allow(c.RealIP(), action)
			if !allowed {
				logger.Warn("Rate limit hit: ip=%s action=%s retry_in=%v", c.RealIP(), action, wait)
				return response.Error(c, errors.TooManyRequests("Too many attempts, please try again later"))
			}
			return next(c)
		}
	}
}
