package webhook_handler

import (
	"encoding/json"

	"github.com/chatseal/chatseal-server/src/database"
	webhook_model "github.com/chatseal/chatseal-server/src/webhook-in/model"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// Receive processes one webhook delivery. The platform retries anything but
// a 2xx, so acknowledgment is the default: only a persistence failure is
// worth a 500 and a redelivery.
//
//	@Summary		Receive webhook events
//	@Description	Processes message and status callbacks from the WhatsApp Cloud API. Statuses are applied before messages within each change.
//	@Tags			Webhook In
//	@Accept			json
//	@Produce		json
//	@Param			input	body		webhook_model.Body	true	"Content sent by WhatsApp Cloud API"
//	@Success		200		{string}	string				"Webhook acknowledged"
//	@Failure		500		{string}	string				"Persistence failure, please redeliver"
//	@Router			/whatsapp/webhook [post]
func Receive(c *fiber.Ctx) error {
	var body webhook_model.Body
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		pterm.DefaultLogger.Warn("Unparseable webhook body: " + err.Error())
		return c.SendStatus(fiber.StatusOK)
	}

	db := database.DB
	for _, entry := range body.Entry {
		for _, change := range entry.Changes {
			if err := handleStatuses(change.Value, db); err != nil {
				pterm.DefaultLogger.Error("Webhook status handling failed: " + err.Error())
				return c.SendStatus(fiber.StatusInternalServerError)
			}
			if err := handleMessages(change.Value, db); err != nil {
				pterm.DefaultLogger.Error("Webhook message handling failed: " + err.Error())
				return c.SendStatus(fiber.StatusInternalServerError)
			}
		}
	}

	return c.SendStatus(fiber.StatusOK)
}
