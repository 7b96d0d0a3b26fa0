package handler

import (
	"net/http"
	"time"

	"github.com/mcoot/dailypuzzles/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest    = apierr.CodeInvalidRequest
	CodeNotFound          = apierr.CodeNotFound
	CodePuzzleUnavailable = apierr.CodePuzzleUnavailable
	CodeInternalError     = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// maxElapsed bounds client-reported solve times so they convert to a
// time.Duration without overflowing
const maxElapsed = 24 * time.Hour

func parseElapsed(ms int64) (time.Duration, error) {
	if ms < 0 || ms > maxElapsed.Milliseconds() {
		return 0, NewInvalidRequestError("elapsed_ms must be between 0 and 86400000")
	}
	return time.Duration(ms) * time.Millisecond, nil
}
