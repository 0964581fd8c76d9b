package webhook_handler

import (
	"encoding/json"

	message_model "github.com/chatseal/chatseal-server/src/message/model"
	message_service "github.com/chatseal/chatseal-server/src/message/service"
	synch_service "github.com/chatseal/chatseal-server/src/synch/service"
	webhook_model "github.com/chatseal/chatseal-server/src/webhook-in/model"
	webhook_service "github.com/chatseal/chatseal-server/src/webhook-in/service"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Serializes updates when two requests race on the same message.
var statusSynchronizer = synch_service.CreateMutexSwapper[string]()

// handleStatuses applies every status callback in the change, strictly in
// payload order: the platform batches transitions like delivered+read for
// one message and the last entry must win. Unknown message ids are silent
// no-ops.
func handleStatuses(value webhook_model.Value, tx *gorm.DB) error {
	for _, status := range value.Statuses {
		update := message_model.StatusUpdate{
			WaMessageID: status.ID,
			Status:      message_model.Status(status.Status),
			Timestamp:   webhook_service.ToTimeFromUnixSeconds(status.Timestamp),
		}
		update.Conversation = marshalMeta(status.Conversation)
		update.Pricing = marshalMeta(status.Pricing)
		if len(status.Errors) > 0 {
			update.Error = marshalMeta(status.Errors[0])
		}

		statusSynchronizer.Lock(status.ID)
		err := message_service.UpdateStatusByWamID(update, tx)
		statusSynchronizer.Unlock(status.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func marshalMeta(v map[string]any) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
