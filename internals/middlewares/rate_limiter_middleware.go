package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"reach_backend/internals/helpers"
)

// GlobalRateLimiter applies to every route.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helpers.JsonError(c, fiber.StatusTooManyRequests, "Too many requests. Try again later.")
		},
	})
}

// LoginRateLimiter is stricter, keyed by client IP.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helpers.JsonError(c, fiber.StatusTooManyRequests, "Too many login attempts. Try again in a minute.")
		},
	})
}
