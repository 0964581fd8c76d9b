package message_model

import (
	"errors"
	"fmt"

	"github.com/chatseal/chatseal-server/src/integration/meta"
)

// ErrTokenInvalid terminates the send path when the preflight proves the
// stored credential is dead.
var ErrTokenInvalid = errors.New("access token invalid or expired")

// SenderNotConnectedError rejects a send whose sender phone is not
// registered with the platform. Issuing the send anyway would fail with a
// far less actionable upstream error.
type SenderNotConnectedError struct {
	Status  string
	Details *meta.PhoneNumber
}

func (e *SenderNotConnectedError) Error() string {
	return fmt.Sprintf(
		"Sender phone status is '%s'. Complete registration in WhatsApp Manager > API Setup.",
		e.Status,
	)
}
