package message_handler

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	websocket_model "github.com/chatseal/chatseal-server/src/websocket/model"
	websocket_tenant_manager "github.com/chatseal/chatseal-server/src/websocket/tenant-manager"
)

// NewMessageTenantManager fans new messages out to all dashboard clients
// subscribed to a tenant; both webhook ingestion and the send handler publish
// through it.
var NewMessageTenantManager = websocket_tenant_manager.CreateTenantChannelManager[message_entity.Message]()

// NewMessageSubscription upgrades the connection to WebSocket and streams new WhatsApp messages.
//
//	@Summary		Subscribe to new messages
//	@Description	Establishes a WebSocket connection and streams incoming and outgoing WhatsApp messages in real-time for a specific tenant.
//	@Tags			Message Websocket
//	@Accept			json
//	@Produce		json
//	@Param			tenant_id	query		string	true	"Tenant ID"
//	@Success		101			{string}	string	"WebSocket connection established"
//	@Router			/websocket/message/new [get]
func NewMessageSubscription(ctx *websocket.Conn) {
	defer ctx.Close()

	tenantID, err := uuid.Parse(ctx.Query("tenant_id"))
	if err != nil {
		return
	}

	client := websocket_model.NewClient(ctx)
	NewMessageTenantManager.AppendClient(tenantID, client, client.ID.String())
	defer NewMessageTenantManager.RemoveClient(tenantID, client.ID.String())

	for {
		msgType, data, err := ctx.ReadMessage()
		if err != nil {
			break
		}

		if msgType == websocket.TextMessage && string(data) == websocket_model.Ping {
			if writeErr := client.WriteMessage(websocket.TextMessage, []byte(websocket_model.Pong)); writeErr != nil {
				break
			}
		}
	}
}
