package notion

import (
	"testing"

	"github.com/phrazzld/lcsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryFromPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    page
		want    domain.TrackedEntry
		wantErr error
	}{
		{
			name: "datetime start is reduced to date",
			page: page{ID: "p", Properties: properties{
				PropSlug:         {RichText: []richText{{PlainText: "two-sum"}}},
				PropLastReviewed: {Date: &dateValue{Start: "2023-11-14T08:00:00.000+00:00"}},
				PropStage:        {Select: &selectValue{Name: "90"}},
			}},
			want: domain.TrackedEntry{PageID: "p", Slug: "two-sum", LastReviewed: "2023-11-14", Stage: "90"},
		},
		{
			name: "slug from text content when plain text missing",
			page: page{ID: "p", Properties: properties{
				PropSlug:         {RichText: []richText{{Text: &textContent{Content: "two-sum"}}}},
				PropLastReviewed: {Date: &dateValue{Start: "2023-11-14"}},
			}},
			want: domain.TrackedEntry{PageID: "p", Slug: "two-sum", LastReviewed: "2023-11-14"},
		},
		{
			name: "missing stage select leaves stage empty",
			page: page{ID: "p", Properties: properties{
				PropSlug:         {RichText: []richText{{PlainText: "two-sum"}}},
				PropLastReviewed: {Date: &dateValue{Start: "2023-11-14"}},
				PropStage:        {},
			}},
			want: domain.TrackedEntry{PageID: "p", Slug: "two-sum", LastReviewed: "2023-11-14"},
		},
		{
			name: "missing slug",
			page: page{ID: "p", Properties: properties{
				PropLastReviewed: {Date: &dateValue{Start: "2023-11-14"}},
			}},
			wantErr: domain.ErrMalformedEntry,
		},
		{
			name: "missing date",
			page: page{ID: "p", Properties: properties{
				PropSlug:         {RichText: []richText{{PlainText: "two-sum"}}},
				PropLastReviewed: {},
			}},
			wantErr: domain.ErrMalformedEntry,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entryFromPage(tt.page)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntryPropertiesOmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	props := entryProperties(&domain.TrackedEntry{
		Slug:         "two-sum",
		LastReviewed: "2023-11-14",
		Stage:        domain.StageOneDay,
		Name:         "1. Two Sum",
	})

	assert.Contains(t, props, PropSlug)
	assert.Contains(t, props, PropLastReviewed)
	assert.Contains(t, props, PropStage)
	assert.Contains(t, props, PropName)
	assert.NotContains(t, props, PropLevel)
	assert.NotContains(t, props, PropSource)
	assert.NotContains(t, props, PropMaterials)
}

func TestSlugFilter(t *testing.T) {
	t.Parallel()

	filter := slugFilter([]string{"a", "b", "c"})

	require.Len(t, filter.Or, 3)
	for i, slug := range []string{"a", "b", "c"} {
		assert.Equal(t, PropSlug, filter.Or[i].Property)
		assert.Equal(t, slug, filter.Or[i].RichText.Equals)
	}
}
