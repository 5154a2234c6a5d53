package store

import (
	"context"

	"github.com/phrazzld/lcsync/internal/domain"
)

// SubmissionSource defines the interface for reading solved problems.
// Version: 1.0
type SubmissionSource interface {
	// RecentAcceptedSubmissions returns up to limit of the user's most recent
	// accepted submissions, newest first, as reported by the source.
	RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]domain.Submission, error)

	// Problem returns metadata for the problem identified by slug.
	// Returns domain.ErrProblemNotFound if the source has no such problem.
	Problem(ctx context.Context, slug string) (*domain.Problem, error)

	// ProblemURL returns the public link of the problem identified by slug.
	ProblemURL(slug string) string
}
