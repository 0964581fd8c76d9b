package message_service

import (
	"context"
	"strings"
	"time"

	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/chatseal/chatseal-server/src/integration/meta"
	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	message_model "github.com/chatseal/chatseal-server/src/message/model"
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

// SendText runs the outbound path for one text message: preflight the
// sender's registration status, issue the send, persist the outbound row.
// Nothing is persisted unless the send itself succeeded.
func SendText(
	ctx context.Context,
	tenant tenant_entity.Tenant,
	to string,
	body string,
	db *gorm.DB,
) (message_entity.Message, *meta.SendResponse, error) {
	client := meta.NewClient()

	if err := preflightSenderStatus(ctx, client, tenant); err != nil {
		return message_entity.Message{}, nil, err
	}

	sendCtx, cancel := context.WithTimeout(ctx, env.SendTimeout)
	defer cancel()

	response, err := client.SendText(sendCtx, tenant.PhoneNumberID, tenant.AccessToken, to, body)
	if err != nil {
		return message_entity.Message{}, nil, err
	}

	msg := message_entity.Message{
		TenantID:  tenant.ID,
		From:      tenant.PhoneNumberID,
		To:        to,
		Body:      body,
		Direction: message_model.Outbound,
		WaType:    "text",
		Status:    message_model.StatusSent,
		Timestamp: time.Now(),
	}
	if wamID := response.FirstMessageID(); wamID != "" {
		msg.WaMessageID = &wamID
	}

	if err := Create(&msg, db); err != nil {
		return message_entity.Message{}, nil, err
	}

	return msg, response, nil
}

// preflightSenderStatus fails fast on states the send call would only
// report confusingly: an unregistered sender phone or a dead token. Any
// other preflight failure is non-fatal and the send surfaces the definitive
// error.
func preflightSenderStatus(ctx context.Context, client *meta.Client, tenant tenant_entity.Tenant) error {
	preflightCtx, cancel := context.WithTimeout(ctx, env.PreflightTimeout)
	defer cancel()

	phone, err := client.GetPhoneNumber(
		preflightCtx,
		tenant.PhoneNumberID,
		tenant.AccessToken,
		"id,display_phone_number,status,name_status",
	)
	if err != nil {
		if ge, ok := meta.AsGraphError(err); ok && ge.TokenInvalid() {
			return message_model.ErrTokenInvalid
		}
		pterm.DefaultLogger.Warn("Send preflight failed, proceeding to send: " + err.Error())
		return nil
	}

	if phone.Status != "" && strings.ToUpper(phone.Status) != "CONNECTED" {
		return &message_model.SenderNotConnectedError{
			Status:  phone.Status,
			Details: phone,
		}
	}

	return nil
}
