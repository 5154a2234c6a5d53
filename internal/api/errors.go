package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/lcsync/internal/domain"
	"github.com/phrazzld/lcsync/internal/domain/srs"
	"github.com/phrazzld/lcsync/internal/service"
)

// MapErrorToStatusCode maps a sync failure to the HTTP status returned by the
// trigger. Failures of the upstream services surface as 502.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		return http.StatusConflict

	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	default:
		return http.StatusBadGateway
	}
}

// GetSafeErrorMessage returns a client-facing description of a sync failure
// that carries no upstream detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		return "A sync is already in progress"

	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return "Sync interrupted"

	case errors.Is(err, srs.ErrUnknownStage):
		return "Tracked entry has a repetition gap with no successor"

	case errors.Is(err, domain.ErrMalformedEntry),
		errors.Is(err, service.ErrUnexpectedSlug):
		return "Tracked-entry database returned an unexpected entry"

	case errors.Is(err, domain.ErrProblemNotFound):
		return "Problem metadata not found"

	default:
		return "Sync failed"
	}
}
