package meta

import (
	"context"
	"net/url"
)

// ExchangeCode trades an authorization code for a user access token. The
// redirect URI must match the one used to start the flow byte-for-byte.
func (c *Client) ExchangeCode(ctx context.Context, appID, appSecret, redirectURI, code string) (string, error) {
	params := url.Values{}
	params.Set("client_id", appID)
	params.Set("client_secret", appSecret)
	params.Set("redirect_uri", redirectURI)
	params.Set("code", code)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.get(ctx, "oauth/access_token", params, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// DebugToken introspects inputToken with app-level credentials and returns
// the scopes granted to it.
func (c *Client) DebugToken(ctx context.Context, appToken, inputToken string) ([]string, error) {
	params := url.Values{}
	params.Set("input_token", inputToken)
	params.Set("access_token", appToken)

	var out struct {
		Data struct {
			Scopes []string `json:"scopes"`
		} `json:"data"`
	}
	if err := c.get(ctx, "debug_token", params, &out); err != nil {
		return nil, err
	}
	return out.Data.Scopes, nil
}
