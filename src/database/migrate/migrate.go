package database_migrate

import (
	"fmt"
	"os"

	"github.com/chatseal/chatseal-server/src/database"
	_ "github.com/chatseal/chatseal-server/src/database/migrations"
	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

func init() {
	if database.DB == nil {
		pterm.DefaultLogger.Warn("Skipping migrations: no database connection")
		return
	}
	automaticMigrations()
	gooseMigrations()
}

// Configures automatic migrations with ORM.
func automaticMigrations() {
	pterm.DefaultLogger.Info("Adding automatic migrations")
	err := database.DB.AutoMigrate(
		&tenant_entity.Tenant{},
		&message_entity.Message{},
	)
	if err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Unable to add automatic migrations: %s", err))
		os.Exit(1)
	}
	pterm.DefaultLogger.Info("Automatic migrations done")
}

// Executes goose migrations.
func gooseMigrations() {
	pterm.DefaultLogger.Info("Executing goose migrations...")
	goose.SetDialect("postgres")

	db, _ := database.DB.DB()
	if err := goose.Up(db, "src/database/migrations"); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Unable to execute goose migrations: %s", err))
		os.Exit(1)
	}

	pterm.DefaultLogger.Info("Goose migrations executed")
}
