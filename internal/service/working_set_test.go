package service

import (
	"testing"
	"time"

	"github.com/phrazzld/lcsync/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sub(slug string, ts int64) domain.Submission {
	return domain.Submission{Slug: slug, SolvedAt: time.Unix(ts, 0).UTC()}
}

func TestNewWorkingSet(t *testing.T) {
	t.Parallel()

	t.Run("latest solve wins", func(t *testing.T) {
		t.Parallel()

		// newest first, as reported by the source
		ws := newWorkingSet([]domain.Submission{
			sub("two-sum", 1700600000),
			sub("valid-anagram", 1700300000),
			sub("two-sum", 1700000000),
		}, time.UTC)

		assert.Equal(t, map[string]string{
			"two-sum":       "2023-11-21",
			"valid-anagram": "2023-11-18",
		}, ws.dates)
		assert.Equal(t, []string{"two-sum", "valid-anagram"}, ws.order)
	})

	t.Run("order follows oldest first", func(t *testing.T) {
		t.Parallel()

		ws := newWorkingSet([]domain.Submission{
			sub("c", 1700300000),
			sub("b", 1700200000),
			sub("a", 1700100000),
		}, time.UTC)

		assert.Equal(t, []string{"a", "b", "c"}, ws.order)
		assert.Equal(t, 3, ws.len())
	})

	t.Run("dates rendered in location", func(t *testing.T) {
		t.Parallel()

		// 2023-11-14T22:13:20Z
		ws := newWorkingSet([]domain.Submission{sub("two-sum", 1700000000)}, time.FixedZone("JST", 9*3600))

		assert.Equal(t, "2023-11-15", ws.dates["two-sum"])
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		ws := newWorkingSet(nil, time.UTC)

		assert.Equal(t, 0, ws.len())
		assert.Empty(t, ws.dates)
	})
}
