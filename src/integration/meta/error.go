package meta

import (
	"encoding/json"
	"errors"
	"fmt"
)

// GraphError is the structured error envelope the Graph API returns. Callers
// branch on the platform's error codes, not on message text.
type GraphError struct {
	Message    string `json:"message"`
	Type       string `json:"type"`
	Code       int    `json:"code"`
	Subcode    int    `json:"error_subcode"`
	FbtraceID  string `json:"fbtrace_id"`
	HTTPStatus int    `json:"-"`
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("graph api error (code %d, http %d): %s", e.Code, e.HTTPStatus, e.Message)
}

// TokenInvalid reports an invalid or expired access token.
func (e *GraphError) TokenInvalid() bool {
	return e.Code == 190
}

// MissingPermission reports that the token lacks access to the object.
func (e *GraphError) MissingPermission() bool {
	return e.Code == 100 || e.Code == 10
}

// AsGraphError unwraps err into a GraphError when the upstream produced one.
func AsGraphError(err error) (*GraphError, bool) {
	var ge *GraphError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func parseGraphError(httpStatus int, raw []byte) error {
	var envelope struct {
		Error *GraphError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.HTTPStatus = httpStatus
		return envelope.Error
	}

	// Unclassified bucket for non-envelope failures (proxies, HTML error
	// pages). Code 0 never matches a classification helper.
	return &GraphError{
		Message:    string(raw),
		Type:       "unclassified",
		HTTPStatus: httpStatus,
	}
}
