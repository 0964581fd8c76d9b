package webhook_handler

import (
	"errors"

	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	message_handler "github.com/chatseal/chatseal-server/src/message/handler"
	message_model "github.com/chatseal/chatseal-server/src/message/model"
	message_service "github.com/chatseal/chatseal-server/src/message/service"
	tenant_service "github.com/chatseal/chatseal-server/src/tenant/service"
	webhook_model "github.com/chatseal/chatseal-server/src/webhook-in/model"
	webhook_service "github.com/chatseal/chatseal-server/src/webhook-in/service"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

// handleMessages persists the inbound messages of a change and broadcasts
// each new row to the tenant's subscribers. A phone_number_id that maps to
// no tenant drops the whole change.
func handleMessages(value webhook_model.Value, tx *gorm.DB) error {
	if len(value.Messages) == 0 {
		return nil
	}

	tenant, err := tenant_service.GetByPhoneNumberID(value.Metadata.PhoneNumberID, tx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pterm.DefaultLogger.Warn(
				"Inbound message for unknown phone_number_id " + value.Metadata.PhoneNumberID,
			)
			return nil
		}
		return err
	}

	for _, inbound := range value.Messages {
		exists, err := message_service.ExistsByWamID(inbound.ID, tx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		wamID := inbound.ID
		msg := message_entity.Message{
			TenantID:    tenant.ID,
			From:        inbound.From,
			To:          tenant.PhoneNumberID,
			Body:        webhook_service.ParseInboundBody(inbound),
			Direction:   message_model.Inbound,
			WaMessageID: &wamID,
			WaType:      inbound.Type,
			ProfileName: value.ProfileName(),
			Status:      message_model.StatusReceived,
			Timestamp:   webhook_service.ToTimeFromUnixSeconds(inbound.Timestamp),
		}

		if err := message_service.Create(&msg, tx); err != nil {
			// A concurrent delivery of the same callback won the race.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}

		go message_handler.NewMessageTenantManager.BroadcastToTenant(tenant.ID, msg)
	}

	return nil
}
