package notion

import (
	"errors"
	"fmt"
)

// Error definitions for the notion package.
var (
	// ErrInvalidConfig is returned when the client is built from an incomplete configuration.
	ErrInvalidConfig = errors.New("invalid notion configuration")

	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid notion response")
)

// APIError is returned when the API answers with a non-2xx status. Code and
// Message come from Notion's error object when the body carries one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion: unexpected status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notion: %d %s: %s", e.StatusCode, e.Code, e.Message)
}
