package srs

import (
	"github.com/phrazzld/lcsync/internal/domain"
)

// Params defines the repetition-gap progression used by the scheduler.
type Params struct {
	// Progression maps a stage to the stage that follows a successful
	// re-solve. A stage absent from the map has no successor.
	Progression map[domain.Stage]domain.Stage

	// IntervalDays maps a stage to its review gap in days. StageDone has
	// no interval.
	IntervalDays map[domain.Stage]int
}

// NewDefaultParams creates a new Params instance with the fixed table
// 1→7→30→90→180→365→Done.
func NewDefaultParams() *Params {
	return &Params{
		Progression: map[domain.Stage]domain.Stage{
			domain.StageOneDay:      domain.StageOneWeek,
			domain.StageOneWeek:     domain.StageOneMonth,
			domain.StageOneMonth:    domain.StageThreeMonths,
			domain.StageThreeMonths: domain.StageSixMonths,
			domain.StageSixMonths:   domain.StageOneYear,
			domain.StageOneYear:     domain.StageDone,
		},
		IntervalDays: map[domain.Stage]int{
			domain.StageOneDay:      1,
			domain.StageOneWeek:     7,
			domain.StageOneMonth:    30,
			domain.StageThreeMonths: 90,
			domain.StageSixMonths:   180,
			domain.StageOneYear:     365,
		},
	}
}
