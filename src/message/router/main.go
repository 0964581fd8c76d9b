package message_router

import (
	message_handler "github.com/chatseal/chatseal-server/src/message/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app *fiber.App) {
	group := app.Group("/whatsapp/message")

	// "/send" must be registered before the tenant id wildcard.
	group.Post("/send", message_handler.SendMessage)
	group.Get("/:tenantId", message_handler.GetMessages)
}
