package tenant_model

import (
	"github.com/chatseal/chatseal-server/src/integration/meta"
)

// VerifyChecks is the per-check outcome of a credential diagnostic run.
// Every check carries either its result or its upstream error, never both.
type VerifyChecks struct {
	Scopes        []string `json:"scopes,omitempty"`
	MissingScopes []string `json:"missing_scopes,omitempty"`
	ScopesError   string   `json:"scopes_error,omitempty"`

	Waba      *meta.WABA `json:"waba,omitempty"`
	WabaError string     `json:"waba_error,omitempty"`

	PhoneNumber      *meta.PhoneNumber `json:"phone_number,omitempty"`
	PhoneNumberError string            `json:"phone_number_error,omitempty"`

	WabaPhoneNumbers      []meta.PhoneNumber `json:"waba_phone_numbers,omitempty"`
	WabaPhoneNumbersError string             `json:"waba_phone_numbers_error,omitempty"`
}

// VerifyReport is the read-only diagnostic returned by manual verify. The
// access token under test is never echoed back.
type VerifyReport struct {
	Success bool         `json:"success"`
	Checks  VerifyChecks `json:"checks"`
	Hints   []string     `json:"hints"`
}
