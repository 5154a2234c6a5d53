package service

import (
	"time"

	"github.com/phrazzld/lcsync/internal/domain"
)

// workingSet maps each solved slug to the review date of its latest solve.
// order holds the slugs in first-seen order, oldest solve first.
type workingSet struct {
	dates map[string]string
	order []string
}

// newWorkingSet walks submissions oldest to newest (the source reports them
// newest first) so the latest solve of a slug overwrites earlier ones.
func newWorkingSet(submissions []domain.Submission, loc *time.Location) workingSet {
	ws := workingSet{dates: make(map[string]string, len(submissions))}
	for i := len(submissions) - 1; i >= 0; i-- {
		sub := submissions[i]
		if _, seen := ws.dates[sub.Slug]; !seen {
			ws.order = append(ws.order, sub.Slug)
		}
		ws.dates[sub.Slug] = domain.ReviewDate(sub.SolvedAt, loc)
	}
	return ws
}

func (ws workingSet) len() int {
	return len(ws.order)
}
