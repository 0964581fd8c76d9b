package oauth_router

import (
	auth_middleware "github.com/chatseal/chatseal-server/src/auth/middleware"
	oauth_handler "github.com/chatseal/chatseal-server/src/oauth/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app *fiber.App) {
	group := app.Group("/whatsapp/oauth", auth_middleware.OAuthRateLimiter)

	group.Get("/start", oauth_handler.Start)
	group.Get("/callback", oauth_handler.Callback)
}
