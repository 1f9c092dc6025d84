package gemini

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("gemini: API key is required")
	ErrEmptyRequest  = errors.New("gemini: request has no messages")
	ErrNoCandidates  = errors.New("gemini: no candidates returned")
	ErrBlocked       = errors.New("gemini: prompt blocked")
)

// APIError is a non-200 reply from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether sending the same request again may succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}
