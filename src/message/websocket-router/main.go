package message_websocket_router

import (
	message_handler "github.com/chatseal/chatseal-server/src/message/handler"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func Route(router fiber.Router) {
	router.Get("/message/new", websocket.New(message_handler.NewMessageSubscription))
}
