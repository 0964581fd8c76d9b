package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/chatseal/chatseal-server/src/database"
	message_router "github.com/chatseal/chatseal-server/src/message/router"
	message_websocket "github.com/chatseal/chatseal-server/src/message/websocket-router"
	oauth_router "github.com/chatseal/chatseal-server/src/oauth/router"
	tenant_router "github.com/chatseal/chatseal-server/src/tenant/router"
	"github.com/chatseal/chatseal-server/src/validators"
	webhook_config "github.com/chatseal/chatseal-server/src/webhook-in/config"
	"github.com/chatseal/chatseal-server/src/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/pterm/pterm"
)

func serve() {
	if database.DB == nil {
		pterm.DefaultLogger.Fatal("Database connection missing, refusing to start")
		return
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		ExposeHeaders: "Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
	}))

	validators.InitValidators()

	// Serving http endpoints
	webhook_config.ServeWebhook(app)
	oauth_router.Route(app)
	tenant_router.Route(app)
	message_router.Route(app)

	// Serving websockets
	websocketRouter := websocket.Main(app)
	message_websocket.Route(websocketRouter)

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping services...")
		app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf(":%s", env.ServerPort))
	pterm.DefaultLogger.Fatal(
		fmt.Sprintf("%v", err),
	)
}
