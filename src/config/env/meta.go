package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

var (
	MetaAppID       string
	MetaAppSecret   string
	MetaVerifyToken string
	GraphVersion    string

	// PreflightTimeout bounds the sender-status check before an outbound
	// send. Exceeding it degrades to the send call, it never fails the
	// whole request.
	PreflightTimeout = 15 * time.Second
	SendTimeout      = 30 * time.Second
)

func loadMetaEnv() {
	MetaAppID = os.Getenv("META_APP_ID")
	MetaAppSecret = os.Getenv("META_APP_SECRET")
	MetaVerifyToken = os.Getenv("META_VERIFY_TOKEN")

	GraphVersion = os.Getenv("GRAPH_API_VERSION")
	if GraphVersion == "" {
		GraphVersion = "v23.0"
	}

	preflightTimeoutSeconds := os.Getenv("PREFLIGHT_TIMEOUT_SECONDS")
	timeoutSecToInt, err := strconv.Atoi(preflightTimeoutSeconds)
	if err == nil && timeoutSecToInt > 0 {
		PreflightTimeout = time.Duration(timeoutSecToInt) * time.Second
	}

	if MetaAppSecret == "" {
		pterm.DefaultLogger.Warn(
			"META_APP_SECRET not set: webhook signature verification is DISABLED",
		)
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf(
			"Meta environment done with graph version %s and preflight timeout %s",
			GraphVersion,
			PreflightTimeout,
		),
	)
}
