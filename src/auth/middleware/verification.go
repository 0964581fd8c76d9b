package auth_middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// MetaVerificationRequest answers the webhook subscription handshake:
// the challenge is echoed only when the mode is "subscribe" and the
// verify token matches, otherwise the request is forbidden.
func MetaVerificationRequest(verifyToken string) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token != "" && token == verifyToken {
			pterm.DefaultLogger.Info("Webhook verified")
			return c.Status(fiber.StatusOK).SendString(challenge)
		}

		pterm.DefaultLogger.Warn("Webhook verification failed")
		return c.SendStatus(fiber.StatusForbidden)
	}
}
