package auth_middleware

import (
	"time"

	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// AdminRateLimiter limits manual connect/verify attempts per IP
var AdminRateLimiter = limiter.New(limiter.Config{
	Max:        env.RateLimitAdmin,
	Expiration: 1 * time.Hour,
	KeyGenerator: func(c *fiber.Ctx) string {
		return "admin:" + c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "Too many admin requests",
			"message": "Please try again later",
		})
	},
})

// OAuthRateLimiter limits OAuth flow starts and callbacks per IP
var OAuthRateLimiter = limiter.New(limiter.Config{
	Max:        env.RateLimitOAuth,
	Expiration: 1 * time.Hour,
	KeyGenerator: func(c *fiber.Ctx) string {
		return "oauth:" + c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "Too many OAuth attempts",
			"message": "Please try again later",
		})
	},
})
