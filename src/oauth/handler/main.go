package oauth_handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	common_model "github.com/chatseal/chatseal-server/src/common/model"
	"github.com/chatseal/chatseal-server/src/config/env"
	oauth_model "github.com/chatseal/chatseal-server/src/oauth/model"
	oauth_service "github.com/chatseal/chatseal-server/src/oauth/service"
	tenant_model "github.com/chatseal/chatseal-server/src/tenant/model"
	"github.com/gofiber/fiber/v2"
)

// Start redirects the browser to the Meta OAuth dialog.
//
//	@Summary		Start the OAuth flow
//	@Description	Redirects to the Meta login dialog requesting the WhatsApp Business scopes. The callback lands on /whatsapp/oauth/callback.
//	@Tags			OAuth
//	@Success		302	{string}	string	"Redirect to the Meta dialog"
//	@Router			/whatsapp/oauth/start [get]
func Start(c *fiber.Ctx) error {
	params := url.Values{}
	params.Set("client_id", env.MetaAppID)
	params.Set("redirect_uri", redirectURI(c))
	params.Set("scope", strings.Join(oauth_model.OAuthScopes, ","))
	params.Set("response_type", "code")

	dialog := fmt.Sprintf("https://www.facebook.com/%s/dialog/oauth?%s", env.GraphVersion, params.Encode())
	return c.Redirect(dialog, fiber.StatusFound)
}

// Callback completes the OAuth flow and connects the tenant.
//
//	@Summary		OAuth callback
//	@Description	Exchanges the authorization code, verifies scopes, discovers the business account and phone number, and upserts the tenant.
//	@Tags			OAuth
//	@Produce		json
//	@Param			code	query		string							true	"Authorization code"
//	@Success		200		{object}	tenant_model.TenantResponse		"Tenant connected"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing authorization code"
//	@Failure		403		{object}	map[string]interface{}			"Required scopes not granted"
//	@Failure		500		{object}	common_model.DescriptiveError	"Connection failed"
//	@Router			/whatsapp/oauth/callback [get]
func Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("missing authorization code", nil, "oauth_handler").Send(),
		)
	}

	tenant, err := oauth_service.Connect(c.Context(), code, redirectURI(c), nil)
	if err != nil {
		var missingScopes *oauth_model.MissingScopesError
		if errors.As(err, &missingScopes) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success":        false,
				"error":          missingScopes.Error(),
				"missing_scopes": missingScopes.Missing,
				"hint":           "Re-run the flow and grant all requested WhatsApp permissions.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to connect WhatsApp account", err, "oauth_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(tenant_model.TenantResponse{
		Success: true,
		Message: "WhatsApp account connected",
		Tenant:  &tenant,
	})
}

// redirectURI derives the callback URL. PUBLIC_BASE_URL pins it when the
// server sits behind a proxy that rewrites Host.
func redirectURI(c *fiber.Ctx) string {
	base := env.PublicBaseURL
	if base == "" {
		base = c.Protocol() + "://" + c.Hostname()
	}
	return strings.TrimSuffix(base, "/") + "/whatsapp/oauth/callback"
}
