package tenant_handler

import (
	"errors"

	common_model "github.com/chatseal/chatseal-server/src/common/model"
	tenant_model "github.com/chatseal/chatseal-server/src/tenant/model"
	tenant_service "github.com/chatseal/chatseal-server/src/tenant/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ManualVerify runs the read-only credential diagnostic.
//
//	@Summary		Verify tenant credentials
//	@Description	Checks token scopes, WABA access, phone number access and registration status for the supplied or stored credentials. Mutates nothing and never echoes the access token.
//	@Tags			Tenant
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tenant_model.ManualVerify		true	"Credentials to verify; tenantId fills the gaps from the store"
//	@Success		200		{object}	tenant_model.VerifyReport		"Diagnostic report"
//	@Failure		400		{object}	common_model.DescriptiveError	"Missing required fields"
//	@Failure		403		{object}	common_model.DescriptiveError	"Invalid admin key"
//	@Failure		404		{object}	common_model.DescriptiveError	"Tenant not found"
//	@Security		AdminKeyAuth
//	@Router			/whatsapp/manual/verify [post]
func ManualVerify(c *fiber.Ctx) error {
	var body tenant_model.ManualVerify
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	wabaID := body.WabaID
	phoneNumberID := body.PhoneNumberID
	accessToken := tenant_service.SanitizeAccessToken(body.AccessToken)

	if body.TenantID != nil {
		tenant, err := tenant_service.GetByID(*body.TenantID, nil)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				common_model.NewApiError("Tenant not found", err, "tenant_service").Send(),
			)
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(
				common_model.NewApiError("unable to load tenant", err, "tenant_service").Send(),
			)
		}
		if wabaID == "" {
			wabaID = tenant.WabaID
		}
		if phoneNumberID == "" {
			phoneNumberID = tenant.PhoneNumberID
		}
		if accessToken == "" {
			accessToken = tenant_service.SanitizeAccessToken(tenant.AccessToken)
		}
	}

	if wabaID == "" || phoneNumberID == "" || accessToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError(
				"Missing required fields: wabaId, phoneNumberId, accessToken",
				nil,
				"handler",
			).Send(),
		)
	}

	report := tenant_service.Verify(c.Context(), wabaID, phoneNumberID, accessToken)
	return c.Status(fiber.StatusOK).JSON(report)
}
