// Package apierr replaces huma's problem+json errors with the flat
// {"error": "...", "details": [...]} body used by every endpoint.
// Importing the package installs it.
package apierr

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

func init() {
	huma.NewError = New
}

// Error is the JSON error body.
type Error struct {
	status  int
	Message string   `json:"error" doc:"Error message"`
	Details []string `json:"details,omitempty" doc:"Optional validation details"`
}

func (e *Error) Error() string { return e.Message }

func (e *Error) GetStatus() int { return e.status }

// New builds an error for status. Schema validation failures (422 in huma)
// are reported as 400; server errors never carry details.
func New(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	e := &Error{status: status, Message: msg}
	if status >= http.StatusInternalServerError {
		return e
	}
	for _, err := range errs {
		if err != nil {
			e.Details = append(e.Details, err.Error())
		}
	}
	return e
}

// Internal logs err and returns a generic 500 that leaks nothing to the client.
func Internal(log *slog.Logger, msg string, err error) huma.StatusError {
	log.Error(msg, "error", err)
	return huma.Error500InternalServerError(msg)
}
