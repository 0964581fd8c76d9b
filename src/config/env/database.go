package env

import (
	"os"

	"github.com/pterm/pterm"
)

var DatabaseURL string

func loadDbEnv() {
	DatabaseURL = os.Getenv("DATABASE_URL")
	if DatabaseURL == "" {
		pterm.DefaultLogger.Warn("DATABASE_URL not set")
		return
	}

	pterm.DefaultLogger.Info("Database environment done")
}
