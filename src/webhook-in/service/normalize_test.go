package webhook_service

import (
	"encoding/json"
	"testing"
	"time"

	webhook_model "github.com/chatseal/chatseal-server/src/webhook-in/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseMessage(t *testing.T, raw string) webhook_model.Message {
	t.Helper()
	var m webhook_model.Message
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestParseInboundBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "text",
			raw:  `{"type":"text","text":{"body":"hello there"}}`,
			want: "hello there",
		},
		{
			name: "text without payload",
			raw:  `{"type":"text"}`,
			want: "",
		},
		{
			name: "image with caption",
			raw:  `{"type":"image","image":{"id":"m1","caption":"sunset"}}`,
			want: "[image] sunset",
		},
		{
			name: "image without caption",
			raw:  `{"type":"image","image":{"id":"m1"}}`,
			want: "[image]",
		},
		{
			name: "audio",
			raw:  `{"type":"audio","audio":{"id":"m2"}}`,
			want: "[audio]",
		},
		{
			name: "video with caption",
			raw:  `{"type":"video","video":{"id":"m3","caption":"clip"}}`,
			want: "[video] clip",
		},
		{
			name: "document with caption",
			raw:  `{"type":"document","document":{"id":"m4","caption":"invoice.pdf"}}`,
			want: "[document] invoice.pdf",
		},
		{
			name: "location",
			raw:  `{"type":"location","location":{"latitude":-23.55,"longitude":-46.63}}`,
			want: "[location] lat=-23.55, lng=-46.63",
		},
		{
			name: "contacts",
			raw:  `{"type":"contacts"}`,
			want: "[contacts]",
		},
		{
			name: "sticker",
			raw:  `{"type":"sticker"}`,
			want: "[sticker]",
		},
		{
			name: "button reply",
			raw:  `{"type":"interactive","interactive":{"type":"button_reply","button_reply":{"id":"opt-1","title":"Yes"}}}`,
			want: "[button] Yes (opt-1)",
		},
		{
			name: "list reply",
			raw:  `{"type":"interactive","interactive":{"type":"list_reply","list_reply":{"id":"row-2","title":"Large"}}}`,
			want: "[list] Large (row-2)",
		},
		{
			name: "interactive without reply",
			raw:  `{"type":"interactive","interactive":{"type":"nfm_reply"}}`,
			want: "[interactive]",
		},
		{
			name: "reaction",
			raw:  `{"type":"reaction","reaction":{"message_id":"wamid.x","emoji":"👍"}}`,
			want: "[reaction] 👍",
		},
		{
			name: "reaction without emoji",
			raw:  `{"type":"reaction","reaction":{"message_id":"wamid.x"}}`,
			want: "[reaction] ",
		},
		{
			name: "unrecognized type",
			raw:  `{"type":"order"}`,
			want: "[order]",
		},
		{
			name: "missing type",
			raw:  `{}`,
			want: "[unknown]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInboundBody(parseMessage(t, tt.raw)))
		})
	}
}

func TestToTimeFromUnixSeconds(t *testing.T) {
	t.Run("valid epoch", func(t *testing.T) {
		got := ToTimeFromUnixSeconds("1756500000")
		assert.Equal(t, time.Unix(1756500000, 0), got)
	})

	t.Run("empty falls back to now", func(t *testing.T) {
		before := time.Now()
		got := ToTimeFromUnixSeconds("")
		assert.False(t, got.Before(before.Add(-time.Second)))
	})

	t.Run("garbage falls back to now", func(t *testing.T) {
		before := time.Now()
		got := ToTimeFromUnixSeconds("not-a-number")
		assert.False(t, got.Before(before.Add(-time.Second)))
	})
}
