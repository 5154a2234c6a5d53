package domain

// Stage is a repetition-gap label: the number of days until the next review,
// or StageDone once the problem has graduated.
type Stage string

// Known stages, in progression order.
const (
	StageOneDay      Stage = "1"
	StageOneWeek     Stage = "7"
	StageOneMonth    Stage = "30"
	StageThreeMonths Stage = "90"
	StageSixMonths   Stage = "180"
	StageOneYear     Stage = "365"
	StageDone        Stage = "Done"
)

// InitialStage is assigned to every newly tracked problem.
const InitialStage = StageOneDay

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}
