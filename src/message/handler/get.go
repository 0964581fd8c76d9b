package message_handler

import (
	common_model "github.com/chatseal/chatseal-server/src/common/model"
	message_service "github.com/chatseal/chatseal-server/src/message/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetMessages lists a tenant's conversation history.
//
//	@Summary		List messages for a tenant
//	@Description	Returns all messages for the tenant ordered by WhatsApp timestamp, oldest first.
//	@Tags			Message
//	@Produce		json
//	@Param			tenantId	path		string							true	"Tenant ID"
//	@Success		200			{object}	map[string]interface{}			"Messages"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid tenant id"
//	@Failure		500			{object}	common_model.DescriptiveError	"Query failed"
//	@Router			/whatsapp/message/{tenantId} [get]
func GetMessages(c *fiber.Ctx) error {
	tenantID, err := uuid.Parse(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("invalid tenant id", err, "message_handler").Send(),
		)
	}

	messages, err := message_service.ListByTenant(tenantID, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to list messages", err, "message_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}
