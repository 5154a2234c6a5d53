package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors callers may check with errors.Is().
var (
	// ErrUnexpectedSlug indicates the entry store returned an entry for a slug
	// that was not part of the queried batch.
	ErrUnexpectedSlug = errors.New("store returned entry for unexpected slug")

	// ErrSyncInProgress is returned by a Runner when a run is already active.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// SyncError wraps a failure of one step of a sync run.
type SyncError struct {
	Step string
	Slug string
	Err  error
}

// Error implements the error interface for SyncError.
func (e *SyncError) Error() string {
	if e.Slug != "" {
		return fmt.Sprintf("sync %s failed for %s: %v", e.Step, e.Slug, e.Err)
	}
	return fmt.Sprintf("sync %s failed: %v", e.Step, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SyncError) Unwrap() error {
	return e.Err
}

func newSyncError(step, slug string, err error) *SyncError {
	return &SyncError{Step: step, Slug: slug, Err: err}
}
