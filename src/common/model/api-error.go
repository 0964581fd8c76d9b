package common_model

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DescriptiveError is the JSON error body returned by every dashboard-facing
// endpoint. Webhook endpoints never use it: the platform only sees bare
// status codes.
type DescriptiveError struct {
	Description string `json:"description"`
	Error       string `json:"error,omitempty"`
	Source      string `json:"source,omitempty"`
}

func NewApiError(description string, err error, source string) *DescriptiveError {
	e := &DescriptiveError{
		Description: description,
		Source:      source,
	}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

func NewParseJsonError(err error) *DescriptiveError {
	return NewApiError("unable to parse JSON body", err, "parser")
}

func NewValidationError(err error) *DescriptiveError {
	return NewApiError("invalid payload", err, "validator")
}

// Send logs the error with full context and returns it for serialization.
func (e *DescriptiveError) Send() *DescriptiveError {
	pterm.DefaultLogger.Error(
		fmt.Sprintf("%s (source: %s): %s", e.Description, e.Source, e.Error),
	)
	return e
}
