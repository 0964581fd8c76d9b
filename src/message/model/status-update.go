package message_model

import (
	"time"

	"gorm.io/datatypes"
)

// StatusUpdate is a field-level patch applied to a message by its
// wa_message_id. Only the populated metadata fields are written.
type StatusUpdate struct {
	WaMessageID  string
	Status       Status
	Timestamp    time.Time
	Conversation datatypes.JSON
	Pricing      datatypes.JSON
	Error        datatypes.JSON
}
