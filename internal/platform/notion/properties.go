package notion

import (
	"fmt"
	"strings"

	"github.com/phrazzld/lcsync/internal/domain"
)

// slugFilter matches pages whose slug equals any of slugs.
func slugFilter(slugs []string) compoundFilter {
	filter := compoundFilter{Or: make([]propertyFilter, 0, len(slugs))}
	for _, slug := range slugs {
		filter.Or = append(filter.Or, propertyFilter{
			Property: PropSlug,
			RichText: textFilter{Equals: slug},
		})
	}
	return filter
}

// reviewProperties is the patch applied when an entry is re-solved.
func reviewProperties(reviewDate string, stage domain.Stage) properties {
	return properties{
		PropLastReviewed: {Date: &dateValue{Start: reviewDate}},
		PropStage:        {Select: &selectValue{Name: string(stage)}},
	}
}

// entryProperties renders a new entry as page properties.
func entryProperties(entry *domain.TrackedEntry) properties {
	props := properties{
		PropSlug: {RichText: []richText{{
			Type: "text",
			Text: &textContent{Content: entry.Slug},
			Annotations: &annotations{
				Color: "default",
			},
			PlainText: entry.Slug,
		}}},
		PropLastReviewed: {Date: &dateValue{Start: entry.LastReviewed}},
		PropStage:        {Select: &selectValue{Name: string(entry.Stage)}},
		PropName: {Title: []richText{{
			Text: &textContent{Content: entry.Name},
		}}},
	}

	if entry.Difficulty != "" {
		props[PropLevel] = property{Select: &selectValue{Name: entry.Difficulty}}
	}
	if entry.Source != "" {
		props[PropSource] = property{Select: &selectValue{Name: entry.Source}}
	}
	if entry.Link != "" {
		props[PropMaterials] = property{Files: []fileValue{{
			Name:     entry.Link,
			Type:     "external",
			External: &externalFile{URL: entry.Link},
		}}}
	}

	return props
}

// entryFromPage maps a queried page back to a TrackedEntry.
func entryFromPage(p page) (domain.TrackedEntry, error) {
	entry := domain.TrackedEntry{
		PageID: p.ID,
		Slug:   plainText(p.Properties[PropSlug].RichText),
		Name:   plainText(p.Properties[PropName].Title),
	}

	if entry.Slug == "" {
		return domain.TrackedEntry{}, fmt.Errorf("%w: page %s has no %s", domain.ErrMalformedEntry, p.ID, PropSlug)
	}

	date := p.Properties[PropLastReviewed].Date
	if date == nil || date.Start == "" {
		return domain.TrackedEntry{}, fmt.Errorf("%w: page %s (%s) has no %s",
			domain.ErrMalformedEntry, p.ID, entry.Slug, PropLastReviewed)
	}
	entry.LastReviewed = domain.NormalizeDate(date.Start)

	if sel := p.Properties[PropStage].Select; sel != nil {
		entry.Stage = domain.Stage(sel.Name)
	}
	if sel := p.Properties[PropLevel].Select; sel != nil {
		entry.Difficulty = sel.Name
	}
	if sel := p.Properties[PropSource].Select; sel != nil {
		entry.Source = sel.Name
	}
	for _, f := range p.Properties[PropMaterials].Files {
		if f.External != nil && f.External.URL != "" {
			entry.Link = f.External.URL
			break
		}
	}

	return entry, nil
}

// plainText concatenates the text of a rich text array.
func plainText(parts []richText) string {
	var b strings.Builder
	for _, part := range parts {
		switch {
		case part.PlainText != "":
			b.WriteString(part.PlainText)
		case part.Text != nil:
			b.WriteString(part.Text.Content)
		}
	}
	return strings.TrimSpace(b.String())
}
