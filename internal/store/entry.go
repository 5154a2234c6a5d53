package store

import (
	"context"

	"github.com/phrazzld/lcsync/internal/domain"
)

// EntryStore defines the interface for tracked-entry persistence.
// Version: 1.0
type EntryStore interface {
	// FindBySlugs returns the stored entries whose slug equals any of slugs,
	// limited to one page of results. An entry the store cannot map back to
	// a slug and review date is reported as domain.ErrMalformedEntry.
	FindBySlugs(ctx context.Context, slugs []string) ([]domain.TrackedEntry, error)

	// UpdateReview replaces the review date and repetition-gap stage of the
	// entry identified by pageID. Other properties are left untouched.
	UpdateReview(ctx context.Context, pageID string, reviewDate string, stage domain.Stage) error

	// Create inserts entry and returns the identifier assigned by the store.
	Create(ctx context.Context, entry *domain.TrackedEntry) (string, error)
}
