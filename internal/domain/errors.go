package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when the query is missing or empty
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNetwork is returned when the Open Food Facts transport call fails
	ErrNetwork = errors.New("open food facts request failed")

	// ErrUpstreamStatus is returned when Open Food Facts answers with a non-2xx status
	ErrUpstreamStatus = errors.New("open food facts returned an error status")

	// ErrUpstreamBadJSON is returned when Open Food Facts answers 2xx with an unparseable body
	ErrUpstreamBadJSON = errors.New("open food facts returned invalid JSON")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidCatalog is returned when a catalog file fails validation
	ErrInvalidCatalog = errors.New("invalid food catalog")
)

// maxUpstreamBody caps how much of an upstream error body is kept for diagnostics.
const maxUpstreamBody = 200

// UpstreamStatusError carries the status and a truncated body of a failed
// Open Food Facts response.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

// NewUpstreamStatusError builds an UpstreamStatusError, truncating body to 200 characters.
func NewUpstreamStatusError(status int, body string) *UpstreamStatusError {
	runes := []rune(body)
	if len(runes) > maxUpstreamBody {
		body = string(runes[:maxUpstreamBody])
	}
	return &UpstreamStatusError{StatusCode: status, Body: body}
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrUpstreamStatus, e.StatusCode)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstreamStatus
}
