package webhook_service

import (
	"fmt"
	"strconv"
	"time"

	webhook_model "github.com/chatseal/chatseal-server/src/webhook-in/model"
)

// ParseInboundBody flattens any inbound message type into a plain-text body.
// Non-text types collapse into a bracketed tag, keeping captions and reply
// titles where they exist.
func ParseInboundBody(m webhook_model.Message) string {
	switch m.Type {
	case "text":
		if m.Text != nil {
			return m.Text.Body
		}
		return ""
	case "image":
		return mediaTag("image", m.Image)
	case "audio":
		return "[audio]"
	case "video":
		return mediaTag("video", m.Video)
	case "document":
		return mediaTag("document", m.Document)
	case "location":
		var lat, lng float64
		if m.Location != nil {
			lat, lng = m.Location.Latitude, m.Location.Longitude
		}
		return fmt.Sprintf("[location] lat=%v, lng=%v", lat, lng)
	case "contacts":
		return "[contacts]"
	case "sticker":
		return "[sticker]"
	case "interactive":
		if m.Interactive != nil {
			if btn := m.Interactive.ButtonReply; btn != nil {
				return fmt.Sprintf("[button] %s (%s)", btn.Title, btn.ID)
			}
			if list := m.Interactive.ListReply; list != nil {
				return fmt.Sprintf("[list] %s (%s)", list.Title, list.ID)
			}
		}
		return "[interactive]"
	case "reaction":
		emoji := ""
		if m.Reaction != nil {
			emoji = m.Reaction.Emoji
		}
		return fmt.Sprintf("[reaction] %s", emoji)
	case "":
		return "[unknown]"
	default:
		return fmt.Sprintf("[%s]", m.Type)
	}
}

func mediaTag(tag string, media *webhook_model.Media) string {
	if media != nil && media.Caption != "" {
		return fmt.Sprintf("[%s] %s", tag, media.Caption)
	}
	return fmt.Sprintf("[%s]", tag)
}

// ToTimeFromUnixSeconds parses the webhook's epoch-seconds string. Absent or
// malformed values fall back to the receive time.
func ToTimeFromUnixSeconds(sec string) time.Time {
	if sec == "" {
		return time.Now()
	}
	n, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return time.Now()
	}
	return time.Unix(n, 0)
}
