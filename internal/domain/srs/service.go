package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/lcsync/internal/domain"
)

// Common errors
var (
	// ErrUnknownStage is returned when a stage has no successor in the
	// progression table, which includes the terminal "Done" stage.
	ErrUnknownStage = errors.New("unknown repetition gap stage")
)

// Service defines the interface for repetition-gap operations
type Service interface {
	// NextStage returns the stage that follows current after a re-solve.
	NextStage(current domain.Stage) (domain.Stage, error)

	// DueDate returns the civil date the next review is due for an entry
	// reviewed on reviewDate at stage. ok is false for stages without an
	// interval.
	DueDate(reviewDate string, stage domain.Stage) (due string, ok bool)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new service with the default progression table
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// NextStage implements Service.
func (s *defaultService) NextStage(current domain.Stage) (domain.Stage, error) {
	next, ok := s.params.Progression[current]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, current)
	}
	return next, nil
}

// DueDate implements Service.
func (s *defaultService) DueDate(reviewDate string, stage domain.Stage) (string, bool) {
	days, ok := s.params.IntervalDays[stage]
	if !ok {
		return "", false
	}

	reviewed, err := time.Parse(domain.DateLayout, reviewDate)
	if err != nil {
		return "", false
	}

	return reviewed.AddDate(0, 0, days).Format(domain.DateLayout), true
}
