package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	ServerPort string
	// PublicBaseURL, when set, pins the OAuth redirect URI instead of
	// deriving it from the incoming request host.
	PublicBaseURL string
)

func loadServerEnv() {
	ServerPort = os.Getenv("PORT")
	if ServerPort == "" {
		ServerPort = "5000"
	}

	PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Server environment done with port %s", ServerPort),
	)
}
