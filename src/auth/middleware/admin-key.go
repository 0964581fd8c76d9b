package auth_middleware

import (
	"crypto/subtle"

	common_model "github.com/chatseal/chatseal-server/src/common/model"
	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/gofiber/fiber/v2"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware guards the manual connect endpoints with the static
// shared secret. Unconfigured means the feature is off, not open.
func AdminKeyMiddleware(c *fiber.Ctx) error {
	if env.AdminAPIKey == "" {
		return c.Status(fiber.StatusNotImplemented).JSON(
			common_model.NewApiError(
				"ADMIN_API_KEY not configured. Set ADMIN_API_KEY to enable manual connect.",
				nil,
				"middleware",
			).Send(),
		)
	}

	header := c.Get(adminKeyHeader)
	if header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(env.AdminAPIKey)) != 1 {
		return c.Status(fiber.StatusForbidden).JSON(
			common_model.NewApiError("Forbidden", nil, "middleware").Send(),
		)
	}

	return c.Next()
}
