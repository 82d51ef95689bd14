package normaliser

import (
	"github.com/oakway-labs/eventscout/internal/core/domain"
)

// Activity converts a raw provider record into the canonical form.
// The second return value reports whether the record survives the
// title/location invariant; callers drop records where it is false.
func Activity(raw domain.RawActivity) (domain.Activity, bool) {
	category := raw.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	source := raw.Source
	if source == "" {
		source = domain.SourceUnknown
	}

	link := raw.Link
	if link == "" {
		link = domain.DefaultLink
	}

	a := domain.Activity{
		ID:          raw.ID,
		Title:       CleanText(raw.Title),
		Description: CleanText(raw.Description),
		Location:    CleanText(raw.Location),
		Date:        Date(raw.Date),
		Time:        Time(raw.Time),
		Category:    CleanText(category),
		Image:       raw.Image,
		Source:      source,
		Link:        link,
	}

	return a, a.Title != "" && a.Location != ""
}

// Activities runs the final normalization pass over an accumulated
// result set, silently dropping records that fail the title/location
// invariant. The returned slice is never nil.
func Activities(raws []domain.RawActivity) []domain.Activity {
	out := make([]domain.Activity, 0, len(raws))
	for _, raw := range raws {
		if a, ok := Activity(raw); ok {
			out = append(out, a)
		}
	}
	return out
}
