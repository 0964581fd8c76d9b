package tenant_model

import (
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	"github.com/google/uuid"
)

// ManualConnect is the admin-supplied credential payload that bypasses the
// OAuth flow.
type ManualConnect struct {
	Name          string `json:"name" validate:"required"`
	WabaID        string `json:"wabaId" validate:"required"`
	PhoneNumberID string `json:"phoneNumberId" validate:"required"`
	PhoneNumber   string `json:"phoneNumber"`
	AccessToken   string `json:"accessToken" validate:"required"`
	IsTest        *bool  `json:"isTest"`
}

// ManualVerify selects the credentials to diagnose: either an existing
// tenant by id, explicit fields, or a mix with explicit fields winning.
type ManualVerify struct {
	TenantID      *uuid.UUID `json:"tenantId"`
	WabaID        string     `json:"wabaId"`
	PhoneNumberID string     `json:"phoneNumberId"`
	AccessToken   string     `json:"accessToken"`
}

type TenantResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Tenant  *tenant_entity.Tenant `json:"tenant"`
}

type ListResponse struct {
	Success bool                   `json:"success"`
	Tenants []tenant_entity.Tenant `json:"tenants"`
}
