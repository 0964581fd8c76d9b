package tenant_router

import (
	auth_middleware "github.com/chatseal/chatseal-server/src/auth/middleware"
	tenant_handler "github.com/chatseal/chatseal-server/src/tenant/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app *fiber.App) {
	group := app.Group("/whatsapp")

	group.Get("/tenant", tenant_handler.List)

	manualGroup := group.Group("/manual",
		auth_middleware.AdminRateLimiter,
		auth_middleware.AdminKeyMiddleware)
	manualGroup.Post("/connect", tenant_handler.ManualConnect)
	manualGroup.Post("/verify", tenant_handler.ManualVerify)
}
