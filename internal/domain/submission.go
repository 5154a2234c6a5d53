package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Submission is one accepted solve reported by the problem source.
type Submission struct {
	Slug     string    `json:"slug"`
	SolvedAt time.Time `json:"solved_at"`
}

// NewSubmission builds a Submission from the raw slug and the decimal Unix
// timestamp string the source reports.
func NewSubmission(slug, timestamp string) (Submission, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Submission{}, fmt.Errorf("%w: empty slug", ErrInvalidSubmission)
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil {
		return Submission{}, fmt.Errorf("%w: timestamp %q for %s: %v",
			ErrInvalidSubmission, timestamp, slug, err)
	}

	return Submission{
		Slug:     slug,
		SolvedAt: time.Unix(secs, 0).UTC(),
	}, nil
}
