package message_service

import (
	"github.com/chatseal/chatseal-server/src/database"
	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListByTenant returns a tenant's conversation history in ascending event
// order.
func ListByTenant(tenantID uuid.UUID, db *gorm.DB) ([]message_entity.Message, error) {
	if db == nil {
		db = database.DB
	}
	messages := []message_entity.Message{}
	err := db.Where("tenant_id = ?", tenantID).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}

func Create(msg *message_entity.Message, db *gorm.DB) error {
	if db == nil {
		db = database.DB
	}
	return db.Create(msg).Error
}
