package auth_middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

const signatureHeader = "X-Hub-Signature-256"

// ValidSignature reports whether headerSig is the HMAC-SHA256 of rawBody
// under appSecret, in Meta's "sha256=<hex>" form. An empty appSecret makes
// every payload valid: that is the explicit permissive mode for environments
// without a configured app secret, not a fallback. A missing header or an
// uncaptured body fails closed.
func ValidSignature(rawBody []byte, headerSig, appSecret string) bool {
	if appSecret == "" {
		return true
	}
	if headerSig == "" || len(rawBody) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(rawBody)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(headerSig), []byte(expected))
}

// VerifyMetaSignature rejects webhook POSTs whose body does not carry a
// valid platform signature. Rejection stops the pipeline before any store
// mutation.
func VerifyMetaSignature(appSecret string) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if ValidSignature(c.Body(), c.Get(signatureHeader), appSecret) {
			return c.Next()
		}
		pterm.DefaultLogger.Warn("Invalid " + signatureHeader + " on webhook request")
		return c.SendStatus(fiber.StatusUnauthorized)
	}
}
