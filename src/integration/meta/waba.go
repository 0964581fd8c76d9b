package meta

import (
	"context"
	"net/url"
)

type WABA struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PhoneNumber struct {
	ID                 string `json:"id"`
	DisplayPhoneNumber string `json:"display_phone_number"`
	Status             string `json:"status"`
	NameStatus         string `json:"name_status"`
	VerifiedName       string `json:"verified_name"`
	QualityRating      string `json:"quality_rating"`
}

// FirstWABA returns the first business account directly associated with the
// user token, or nil when there is none.
func (c *Client) FirstWABA(ctx context.Context, accessToken string) (*WABA, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)
	params.Set("fields", "id,name")

	var out struct {
		Data []WABA `json:"data"`
	}
	if err := c.get(ctx, "me/whatsapp_business_accounts", params, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, nil
	}
	return &out.Data[0], nil
}

// FirstOwnedWABA is the discovery fallback: it walks the user's businesses
// for an owned business account.
func (c *Client) FirstOwnedWABA(ctx context.Context, accessToken string) (*WABA, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)
	params.Set("fields", "name,businesses{owned_whatsapp_business_account{id,name}}")

	var out struct {
		Businesses struct {
			Data []struct {
				OwnedWhatsAppBusinessAccount *WABA `json:"owned_whatsapp_business_account"`
			} `json:"data"`
		} `json:"businesses"`
	}
	if err := c.get(ctx, "me", params, &out); err != nil {
		return nil, err
	}
	for _, business := range out.Businesses.Data {
		if business.OwnedWhatsAppBusinessAccount != nil && business.OwnedWhatsAppBusinessAccount.ID != "" {
			return business.OwnedWhatsAppBusinessAccount, nil
		}
	}
	return nil, nil
}

// GetWABA reads a business account by id with the given fields.
func (c *Client) GetWABA(ctx context.Context, wabaID, accessToken, fields string) (*WABA, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)
	params.Set("fields", fields)

	var out WABA
	if err := c.get(ctx, wabaID, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhoneNumbers lists the phone numbers attached to a business account.
func (c *Client) PhoneNumbers(ctx context.Context, wabaID, accessToken, fields string) ([]PhoneNumber, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)
	if fields != "" {
		params.Set("fields", fields)
	}

	var out struct {
		Data []PhoneNumber `json:"data"`
	}
	if err := c.get(ctx, wabaID+"/phone_numbers", params, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetPhoneNumber reads a single phone number by its external id. Used by the
// outbound send preflight to check the registration status.
func (c *Client) GetPhoneNumber(ctx context.Context, phoneNumberID, accessToken, fields string) (*PhoneNumber, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)
	params.Set("fields", fields)

	var out PhoneNumber
	if err := c.get(ctx, phoneNumberID, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
