package tenant_handler

import (
	common_model "github.com/chatseal/chatseal-server/src/common/model"
	tenant_model "github.com/chatseal/chatseal-server/src/tenant/model"
	tenant_service "github.com/chatseal/chatseal-server/src/tenant/service"
	"github.com/gofiber/fiber/v2"
)

// List returns all connected tenants.
//
//	@Summary		List tenants
//	@Description	Returns the safe projection of every connected tenant. Access tokens are never serialized.
//	@Tags			Tenant
//	@Produce		json
//	@Success		200	{object}	tenant_model.ListResponse		"Connected tenants"
//	@Failure		500	{object}	common_model.DescriptiveError	"Failed to list tenants"
//	@Router			/whatsapp/tenant [get]
func List(c *fiber.Ctx) error {
	tenants, err := tenant_service.List(nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to list tenants", err, "tenant_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(tenant_model.ListResponse{
		Success: true,
		Tenants: tenants,
	})
}
