package tenant_entity

import (
	common_model "github.com/chatseal/chatseal-server/src/common/model"
)

// Tenant is one onboarded WhatsApp business. At most one row exists per
// WABA id; reconnecting refreshes the credentials in place, rows are never
// deleted in normal operation.
type Tenant struct {
	common_model.Audit
	Name          string `json:"name" gorm:"not null"`
	PhoneNumber   string `json:"phoneNumber"`
	PhoneNumberID string `json:"phoneNumberId" gorm:"index"`
	WabaID        string `json:"wabaId" gorm:"uniqueIndex;not null"`
	// AccessToken is the bearer credential for the Graph API. It never
	// leaves the process through JSON.
	AccessToken string `json:"-"`
	IsTest      bool   `json:"isTest" gorm:"default:false"`
	PlanType    string `json:"planType" gorm:"default:free"`
}
