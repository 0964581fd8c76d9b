package tenant_service

import (
	"errors"

	"github.com/chatseal/chatseal-server/src/database"
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	"gorm.io/gorm"
)

// UpsertData carries the credential fields discovered by the OAuth flow or
// supplied by manual connect.
type UpsertData struct {
	Name          string
	WabaID        string
	PhoneNumberID string
	PhoneNumber   string
	AccessToken   string
	IsTest        *bool
}

// UpsertByWabaID inserts or refreshes the tenant owning the given WABA id.
// The WABA id is the natural dedup key: connecting twice yields one row with
// the newer credentials. The display phone is only overwritten by a
// non-empty value and IsTest only when explicitly supplied.
func UpsertByWabaID(data UpsertData, db *gorm.DB) (tenant_entity.Tenant, error) {
	if db == nil {
		db = database.DB
	}

	token := SanitizeAccessToken(data.AccessToken)

	var tenant tenant_entity.Tenant
	err := db.Where("waba_id = ?", data.WabaID).First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tenant = tenant_entity.Tenant{
			Name:          data.Name,
			WabaID:        data.WabaID,
			PhoneNumberID: data.PhoneNumberID,
			PhoneNumber:   data.PhoneNumber,
			AccessToken:   token,
		}
		if data.IsTest != nil {
			tenant.IsTest = *data.IsTest
		}
		if err := db.Create(&tenant).Error; err != nil {
			return tenant_entity.Tenant{}, err
		}
		return tenant, nil
	}
	if err != nil {
		return tenant_entity.Tenant{}, err
	}

	tenant.Name = data.Name
	tenant.AccessToken = token
	tenant.PhoneNumberID = data.PhoneNumberID
	if data.PhoneNumber != "" {
		tenant.PhoneNumber = data.PhoneNumber
	}
	if data.IsTest != nil {
		tenant.IsTest = *data.IsTest
	}
	if err := db.Save(&tenant).Error; err != nil {
		return tenant_entity.Tenant{}, err
	}
	return tenant, nil
}
