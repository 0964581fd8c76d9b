package webhook_config

import (
	auth_middleware "github.com/chatseal/chatseal-server/src/auth/middleware"
	"github.com/chatseal/chatseal-server/src/config/env"
	webhook_handler "github.com/chatseal/chatseal-server/src/webhook-in/handler"
	"github.com/gofiber/fiber/v2"
)

// ServeWebhook mounts the Cloud API webhook endpoints: the verification
// handshake on GET and the signed event delivery on POST.
func ServeWebhook(app *fiber.App) {
	app.Get("/whatsapp/webhook", auth_middleware.MetaVerificationRequest(env.MetaVerifyToken))
	app.Post(
		"/whatsapp/webhook",
		auth_middleware.VerifyMetaSignature(env.MetaAppSecret),
		webhook_handler.Receive,
	)
}
