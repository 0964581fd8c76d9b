package database

import (
	"fmt"
	"os"

	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/pterm/pterm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared connection handle. All cross-request state lives behind
// it; request handlers never hold state of their own.
var DB *gorm.DB

func init() {
	if env.DatabaseURL == "" {
		// Tests install their own handle. The server refuses to start
		// without one in serve().
		pterm.DefaultLogger.Warn("Skipping database connection: DATABASE_URL not set")
		return
	}
	Connect()
}

// Connect opens the Postgres connection. TranslateError is required: the
// unique index on wa_message_id resolves races between duplicate webhook
// deliveries, and services detect the loser via gorm.ErrDuplicatedKey.
func Connect() {
	pterm.DefaultLogger.Info("Connecting to database...")

	db, err := gorm.Open(postgres.Open(env.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to connect to database: %s", err),
		)
		os.Exit(1)
	}

	DB = db
	pterm.DefaultLogger.Info("Database connected")
}
