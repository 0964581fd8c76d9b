package message_model

// Direction tells whether the tenant received or authored a message.
type Direction string

const (
	Inbound  Direction = "inbound"
	Outbound Direction = "outbound"
)

// Status is the delivery state of a message. Fresh inbound rows start as
// Received and outbound rows as Sent; later webhook status callbacks
// overwrite the field by wa_message_id.
type Status string

const (
	StatusReceived  Status = "received"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusFailed    Status = "failed"
	StatusDeleted   Status = "deleted"
)
