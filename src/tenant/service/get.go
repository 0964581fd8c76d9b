package tenant_service

import (
	"github.com/chatseal/chatseal-server/src/database"
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetByID(id uuid.UUID, db *gorm.DB) (tenant_entity.Tenant, error) {
	if db == nil {
		db = database.DB
	}
	var tenant tenant_entity.Tenant
	err := db.First(&tenant, "id = ?", id).Error
	return tenant, err
}

// GetByPhoneNumberID resolves the tenant owning an inbound webhook's
// destination phone number.
func GetByPhoneNumberID(phoneNumberID string, db *gorm.DB) (tenant_entity.Tenant, error) {
	if db == nil {
		db = database.DB
	}
	var tenant tenant_entity.Tenant
	err := db.Where("phone_number_id = ?", phoneNumberID).First(&tenant).Error
	return tenant, err
}

func List(db *gorm.DB) ([]tenant_entity.Tenant, error) {
	if db == nil {
		db = database.DB
	}
	tenants := []tenant_entity.Tenant{}
	err := db.Order("created_at ASC").Find(&tenants).Error
	return tenants, err
}
