package common_model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit holds the identity and bookkeeping columns shared by every entity.
type Audit struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" example:"550e8400-e29b-41d4-a716-446655440000"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Audit) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
