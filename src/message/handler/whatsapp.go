package message_handler

import (
	"errors"

	common_model "github.com/chatseal/chatseal-server/src/common/model"
	message_model "github.com/chatseal/chatseal-server/src/message/model"
	message_service "github.com/chatseal/chatseal-server/src/message/service"
	tenant_service "github.com/chatseal/chatseal-server/src/tenant/service"
	"github.com/chatseal/chatseal-server/src/validators"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SendMessage sends a text message on behalf of a tenant.
//
//	@Summary		Send a WhatsApp text message
//	@Description	Preflights the sender registration status, sends the message through the Cloud API and persists the outbound record. The new message is broadcast to the tenant's WebSocket subscribers.
//	@Tags			Message
//	@Accept			json
//	@Produce		json
//	@Param			body	body		message_model.SendWhatsAppMessage	true	"Message to send"
//	@Success		200		{object}	map[string]interface{}				"Upstream send response"
//	@Failure		400		{object}	common_model.DescriptiveError		"Invalid body"
//	@Failure		401		{object}	common_model.DescriptiveError		"Access token invalid or expired"
//	@Failure		404		{object}	common_model.DescriptiveError		"Tenant not found"
//	@Failure		409		{object}	common_model.DescriptiveError		"Sender phone not connected"
//	@Failure		500		{object}	common_model.DescriptiveError		"Send failed"
//	@Router			/whatsapp/message/send [post]
func SendMessage(c *fiber.Ctx) error {
	var body message_model.SendWhatsAppMessage
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

	tenant, err := tenant_service.GetByID(body.TenantID, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(
				common_model.NewApiError("tenant not found", err, "tenant_service").Send(),
			)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to load tenant", err, "tenant_service").Send(),
		)
	}

	msg, response, err := message_service.SendText(c.Context(), tenant, body.To, body.Message, nil)
	if err != nil {
		var notConnected *message_model.SenderNotConnectedError
		switch {
		case errors.As(err, &notConnected):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   notConnected.Error(),
				"details": notConnected.Details,
			})
		case errors.Is(err, message_model.ErrTokenInvalid):
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("access token invalid or expired", err, "message_service").Send(),
			)
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(
				common_model.NewApiError("unable to send message", err, "message_service").Send(),
			)
		}
	}

	go NewMessageTenantManager.BroadcastToTenant(tenant.ID, msg)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    response,
	})
}
