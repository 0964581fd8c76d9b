package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/chatseal/chatseal-server/src/config/env"
)

const DefaultBaseURL = "https://graph.facebook.com"

// BaseURL is swapped for a test server address in tests.
var BaseURL = DefaultBaseURL

var sharedHTTPClient = &http.Client{}

// Client is a thin Graph API client. Credentials are passed per call: all
// tenant state lives in the credential store and is resolved per request,
// never held by the client.
type Client struct {
	Version    string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		Version:    env.GraphVersion,
		BaseURL:    BaseURL,
		HTTPClient: sharedHTTPClient,
	}
}

// AppToken builds the app-level credential used for token introspection.
func AppToken() string {
	return env.MetaAppID + "|" + env.MetaAppSecret
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/%s/%s", c.BaseURL, c.Version, strings.TrimPrefix(path, "/"))
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.endpoint(path)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path, bearerToken string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		return parseGraphError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
