package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the civil-date format used for review dates.
const DateLayout = "2006-01-02"

// TrackedEntry is a problem tracked in the spaced-repetition database.
type TrackedEntry struct {
	// PageID is assigned by the store; empty for entries not yet created.
	PageID       string `json:"page_id,omitempty"`
	Slug         string `json:"slug"`
	LastReviewed string `json:"last_reviewed"`
	Stage        Stage  `json:"stage"`
	Difficulty   string `json:"difficulty,omitempty"`
	Source       string `json:"source,omitempty"`
	Link         string `json:"link,omitempty"`
	Name         string `json:"name,omitempty"`
}

// NewTrackedEntry builds the entry for a problem solved for the first time.
func NewTrackedEntry(problem *Problem, reviewDate, source, link string) (*TrackedEntry, error) {
	if problem == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrValidation)
	}

	entry := &TrackedEntry{
		Slug:         problem.Slug,
		LastReviewed: reviewDate,
		Stage:        InitialStage,
		Difficulty:   problem.Difficulty,
		Source:       source,
		Link:         link,
		Name:         problem.DisplayName(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks the fields every stored entry needs.
func (e *TrackedEntry) Validate() error {
	if e.Slug == "" {
		return fmt.Errorf("%w: empty slug", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, e.LastReviewed); err != nil {
		return fmt.Errorf("%w: review date %q", ErrValidation, e.LastReviewed)
	}
	if e.Stage == "" {
		return fmt.Errorf("%w: empty stage", ErrValidation)
	}
	return nil
}

// ReviewDate renders t as a civil date in loc.
func ReviewDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

// NormalizeDate reduces a stored date, which may carry a time component
// ("2023-11-14T09:00:00.000+00:00"), to its civil-date part.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		return s[:len(DateLayout)]
	}
	return s
}
