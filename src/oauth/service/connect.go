package oauth_service

import (
	"context"

	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/chatseal/chatseal-server/src/integration/meta"
	oauth_model "github.com/chatseal/chatseal-server/src/oauth/model"
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	tenant_service "github.com/chatseal/chatseal-server/src/tenant/service"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

// Connect completes the OAuth flow: it trades the authorization code for a
// token, checks the granted scopes, discovers the user's business account
// and phone number, and upserts the tenant.
func Connect(ctx context.Context, code, redirectURI string, db *gorm.DB) (tenant_entity.Tenant, error) {
	client := meta.NewClient()

	accessToken, err := client.ExchangeCode(ctx, env.MetaAppID, env.MetaAppSecret, redirectURI, code)
	if err != nil {
		return tenant_entity.Tenant{}, err
	}

	if missing := checkScopes(ctx, client, accessToken); len(missing) > 0 {
		return tenant_entity.Tenant{}, &oauth_model.MissingScopesError{Missing: missing}
	}

	waba, err := discoverWABA(ctx, client, accessToken)
	if err != nil {
		return tenant_entity.Tenant{}, err
	}

	name := waba.Name
	if name == "" {
		// The discovery fallback path does not always carry the name.
		detail, err := client.GetWABA(ctx, waba.ID, accessToken, "id,name")
		if err != nil {
			pterm.DefaultLogger.Warn("Could not fetch WABA name: " + err.Error())
		} else {
			name = detail.Name
		}
	}
	if name == "" {
		name = "WhatsApp Business"
	}

	phones, err := client.PhoneNumbers(ctx, waba.ID, accessToken, "id,display_phone_number,verified_name,quality_rating")
	if err != nil {
		return tenant_entity.Tenant{}, err
	}
	if len(phones) == 0 {
		return tenant_entity.Tenant{}, oauth_model.ErrNoPhoneNumber
	}
	phone := phones[0]

	return tenant_service.UpsertByWabaID(tenant_service.UpsertData{
		Name:          name,
		WabaID:        waba.ID,
		PhoneNumberID: phone.ID,
		PhoneNumber:   phone.DisplayPhoneNumber,
		AccessToken:   accessToken,
	}, db)
}

// checkScopes introspects the token and returns the required scopes it
// lacks. An introspection failure counts as no scopes granted: connecting a
// tenant with unverifiable permissions only fails later and worse.
func checkScopes(ctx context.Context, client *meta.Client, accessToken string) []string {
	granted, err := client.DebugToken(ctx, meta.AppToken(), accessToken)
	if err != nil {
		pterm.DefaultLogger.Warn("Token introspection failed: " + err.Error())
		granted = nil
	}
	return oauth_model.MissingScopes(granted)
}

// discoverWABA tries the direct edge first, then the owned-business
// fallback.
func discoverWABA(ctx context.Context, client *meta.Client, accessToken string) (*meta.WABA, error) {
	waba, err := client.FirstWABA(ctx, accessToken)
	if err != nil {
		pterm.DefaultLogger.Warn("Direct WABA discovery failed: " + err.Error())
	}
	if waba != nil {
		return waba, nil
	}

	waba, err = client.FirstOwnedWABA(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if waba == nil {
		return nil, oauth_model.ErrNoBusinessAccount
	}
	return waba, nil
}
