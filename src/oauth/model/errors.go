package oauth_model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoBusinessAccount aborts the flow when neither discovery path
	// finds a WhatsApp Business Account for the authorizing user.
	ErrNoBusinessAccount = errors.New("no WhatsApp Business Account found for this user")

	// ErrNoPhoneNumber aborts the flow when the account has no phone
	// numbers attached yet.
	ErrNoPhoneNumber = errors.New("no phone number found on the WhatsApp Business Account")
)

// MissingScopesError rejects a token that was granted without the scopes the
// backend needs to operate.
type MissingScopesError struct {
	Missing []string
}

func (e *MissingScopesError) Error() string {
	return fmt.Sprintf("missing required permissions: %s", strings.Join(e.Missing, ", "))
}
