package message_service

import (
	"github.com/chatseal/chatseal-server/src/database"
	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	message_model "github.com/chatseal/chatseal-server/src/message/model"
	"gorm.io/gorm"
)

// ExistsByWamID reports whether a message with the given platform id is
// already persisted. The unique index backs this up under races: the check
// is an optimization, the index is the guarantee.
func ExistsByWamID(wamID string, db *gorm.DB) (bool, error) {
	if db == nil {
		db = database.DB
	}
	var count int64
	err := db.Model(&message_entity.Message{}).
		Where("wa_message_id = ?", wamID).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatusByWamID applies a delivery-status patch to the message the
// platform reported on. An unknown wa_message_id affects zero rows and is
// not an error: the callback may precede the local send-path write, or the
// message was never ours.
func UpdateStatusByWamID(update message_model.StatusUpdate, db *gorm.DB) error {
	if db == nil {
		db = database.DB
	}

	fields := map[string]any{
		"status":    update.Status,
		"timestamp": update.Timestamp,
	}
	if update.Conversation != nil {
		fields["conversation"] = update.Conversation
	}
	if update.Pricing != nil {
		fields["pricing"] = update.Pricing
	}
	if update.Error != nil {
		fields["error"] = update.Error
	}

	return db.Model(&message_entity.Message{}).
		Where("wa_message_id = ?", update.WaMessageID).
		Updates(fields).Error
}
