package meta

import (
	"context"
)

type SendResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// FirstMessageID returns the platform-assigned id of the sent message.
func (r *SendResponse) FirstMessageID() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}

// SendText sends a text message from the given sender phone number.
func (c *Client) SendText(ctx context.Context, phoneNumberID, accessToken, to, body string) (*SendResponse, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text": map[string]any{
			"body": body,
		},
	}

	var out SendResponse
	if err := c.postJSON(ctx, phoneNumberID+"/messages", accessToken, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
