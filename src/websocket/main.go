package websocket

import (
	fiberws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Main mounts the websocket group and rejects plain HTTP requests on it.
func Main(app *fiber.App) fiber.Router {
	router := app.Group("/websocket")

	router.Use(func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	return router
}
