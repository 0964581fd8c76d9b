package env

import (
	"os"
	"strconv"

	"github.com/pterm/pterm"
)

var (
	AdminAPIKey string

	RateLimitAdmin int // Per hour per IP
	RateLimitOAuth int // Per hour per IP
)

func loadAdminEnv() {
	AdminAPIKey = os.Getenv("ADMIN_API_KEY")

	RateLimitAdmin = 30
	if val := os.Getenv("RATE_LIMIT_ADMIN"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			RateLimitAdmin = parsed
		}
	}

	RateLimitOAuth = 20
	if val := os.Getenv("RATE_LIMIT_OAUTH"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			RateLimitOAuth = parsed
		}
	}

	if AdminAPIKey == "" {
		pterm.DefaultLogger.Warn("ADMIN_API_KEY not set: manual connect endpoints are DISABLED")
	}
}
