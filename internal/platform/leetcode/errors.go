package leetcode

import (
	"errors"
	"fmt"
	"strings"
)

// Error definitions for the leetcode package.
var (
	// ErrInvalidConfig is returned when the client is built from an incomplete configuration.
	ErrInvalidConfig = errors.New("invalid leetcode configuration")

	// ErrInvalidResponse is returned when a response body cannot be decoded
	// or lacks a field the caller needs.
	ErrInvalidResponse = errors.New("invalid leetcode response")
)

// APIError is returned when the endpoint answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("leetcode: unexpected status %d: %s", e.StatusCode, e.Body)
}

// GraphQLError is returned when the response carries a non-empty errors list.
type GraphQLError struct {
	Operation string
	Messages  []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("leetcode: %s: %s", e.Operation, strings.Join(e.Messages, "; "))
}
