package message_model

import "github.com/google/uuid"

// SendWhatsAppMessage is the outbound send request body.
type SendWhatsAppMessage struct {
	TenantID uuid.UUID `json:"tenantId" validate:"required"`
	To       string    `json:"to" validate:"required"`
	Message  string    `json:"message" validate:"required"`
}
