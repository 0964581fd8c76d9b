package webhook_model

// Body is the envelope WhatsApp posts to the webhook endpoint. One request
// may carry several entries, each with several changes.
type Body struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

// Value holds the actual payload of a change. Statuses and Messages are
// mutually exclusive in practice but nothing in the format guarantees it.
type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts"`
	Messages         []Message `json:"messages"`
	Statuses         []Status  `json:"statuses"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// Message is one inbound message. Exactly one of the typed payloads is
// populated, matching the Type tag.
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`

	Text *struct {
		Body string `json:"body"`
	} `json:"text,omitempty"`
	Image    *Media `json:"image,omitempty"`
	Video    *Media `json:"video,omitempty"`
	Document *Media `json:"document,omitempty"`
	Location *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location,omitempty"`
	Interactive *struct {
		Type        string `json:"type"`
		ButtonReply *Reply `json:"button_reply,omitempty"`
		ListReply   *Reply `json:"list_reply,omitempty"`
	} `json:"interactive,omitempty"`
	Reaction *struct {
		MessageID string `json:"message_id"`
		Emoji     string `json:"emoji"`
	} `json:"reaction,omitempty"`
}

type Media struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption"`
}

type Reply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Status is one delivery-state callback for a previously sent message.
type Status struct {
	ID           string           `json:"id"`
	Status       string           `json:"status"`
	Timestamp    string           `json:"timestamp"`
	RecipientID  string           `json:"recipient_id"`
	Conversation map[string]any   `json:"conversation,omitempty"`
	Pricing      map[string]any   `json:"pricing,omitempty"`
	Errors       []map[string]any `json:"errors,omitempty"`
}

// ProfileName returns the sender's profile name from the first contact, if
// present.
func (v *Value) ProfileName() string {
	if len(v.Contacts) == 0 {
		return ""
	}
	return v.Contacts[0].Profile.Name
}
