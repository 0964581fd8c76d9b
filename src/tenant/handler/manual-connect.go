package tenant_handler

import (
	"context"

	common_model "github.com/chatseal/chatseal-server/src/common/model"
	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/chatseal/chatseal-server/src/integration/meta"
	tenant_model "github.com/chatseal/chatseal-server/src/tenant/model"
	tenant_service "github.com/chatseal/chatseal-server/src/tenant/service"
	"github.com/chatseal/chatseal-server/src/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// ManualConnect upserts a tenant from explicit credentials.
//
//	@Summary		Manually connect a tenant
//	@Description	Upserts a tenant from explicit WABA credentials, bypassing the OAuth flow. When the display phone is absent it is resolved from the Graph API best-effort.
//	@Tags			Tenant
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tenant_model.ManualConnect		true	"Credential fields"
//	@Success		200		{object}	tenant_model.TenantResponse		"Tenant connected"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing required fields"
//	@Failure		403		{object}	common_model.DescriptiveError	"Invalid admin key"
//	@Failure		500		{object}	common_model.DescriptiveError	"Upsert failed"
//	@Security		AdminKeyAuth
//	@Router			/whatsapp/manual/connect [post]
func ManualConnect(c *fiber.Ctx) error {
	var body tenant_model.ManualConnect
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	token := tenant_service.SanitizeAccessToken(body.AccessToken)

	// Best-effort display phone resolution; a failure keeps the field empty.
	displayPhone := body.PhoneNumber
	if displayPhone == "" {
		ctx, cancel := context.WithTimeout(c.Context(), env.PreflightTimeout)
		defer cancel()

		phone, err := meta.NewClient().GetPhoneNumber(ctx, body.PhoneNumberID, token, "display_phone_number")
		if err != nil {
			pterm.DefaultLogger.Warn("Could not fetch display_phone_number: " + err.Error())
		} else {
			displayPhone = phone.DisplayPhoneNumber
		}
	}

	tenant, err := tenant_service.UpsertByWabaID(tenant_service.UpsertData{
		Name:          body.Name,
		WabaID:        body.WabaID,
		PhoneNumberID: body.PhoneNumberID,
		PhoneNumber:   displayPhone,
		AccessToken:   token,
		IsTest:        body.IsTest,
	}, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("manual connect failed", err, "tenant_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(tenant_model.TenantResponse{
		Success: true,
		Tenant:  &tenant,
	})
}
