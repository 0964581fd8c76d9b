package message_entity

import (
	"time"

	common_model "github.com/chatseal/chatseal-server/src/common/model"
	message_model "github.com/chatseal/chatseal-server/src/message/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Message is one inbound or outbound chat message. WaMessageID is the
// platform's identifier: unique when present, it is the idempotency key for
// ingestion and the reconciliation key for status callbacks. Rows are only
// ever mutated by those callbacks, never deleted.
type Message struct {
	common_model.Audit
	TenantID    uuid.UUID               `json:"tenantId" gorm:"type:uuid;not null;index"`
	From        string                  `json:"from"`
	To          string                  `json:"to"`
	Body        string                  `json:"message"`
	Direction   message_model.Direction `json:"direction" gorm:"not null"`
	WaMessageID *string                 `json:"waMessageId,omitempty" gorm:"uniqueIndex"`
	WaType      string                  `json:"waType,omitempty"`
	ProfileName string                  `json:"profileName,omitempty"`
	Status      message_model.Status    `json:"status" gorm:"default:delivered"`
	Timestamp   time.Time               `json:"timestamp"`

	// Conversation, pricing and error metadata reported by status
	// callbacks, stored as delivered by the platform.
	Conversation datatypes.JSON `json:"conversation,omitempty"`
	Pricing      datatypes.JSON `json:"pricing,omitempty"`
	Error        datatypes.JSON `json:"error,omitempty"`
}
