package normaliser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakway-labs/eventscout/internal/core/domain"
)

func TestActivity(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		raw := domain.RawActivity{
			ID:          "eb-123",
			Title:       "<b>Jazz Night</b>",
			Description: "An   evening of <i>live</i> jazz",
			Location:    "The Blue Room, Austin",
			Date:        "2025-03-14T19:00:00",
			Time:        "7:30 PM",
			Category:    "Music",
			Image:       "https://example.com/img.jpg",
			Source:      "Eventbrite",
			Link:        "https://example.com/event",
		}

		a, ok := Activity(raw)
		require.True(t, ok)
		assert.Equal(t, "eb-123", a.ID)
		assert.Equal(t, "Jazz Night", a.Title)
		assert.Equal(t, "An evening of live jazz", a.Description)
		assert.Equal(t, "The Blue Room, Austin", a.Location)
		assert.Equal(t, "2025-03-14", a.Date)
		assert.Equal(t, "19:30", a.Time)
		assert.Equal(t, "Music", a.Category)
		assert.Equal(t, "Eventbrite", a.Source)
		assert.Equal(t, "https://example.com/event", a.Link)
	})

	t.Run("defaults applied", func(t *testing.T) {
		raw := domain.RawActivity{
			ID:       "x",
			Title:    "Something",
			Location: "Somewhere",
		}

		a, ok := Activity(raw)
		require.True(t, ok)
		assert.Equal(t, domain.DefaultCategory, a.Category)
		assert.Equal(t, domain.SourceUnknown, a.Source)
		assert.Equal(t, domain.DefaultLink, a.Link)
		assert.Empty(t, a.Image)
	})

	t.Run("dropped without title", func(t *testing.T) {
		_, ok := Activity(domain.RawActivity{Location: "Somewhere"})
		assert.False(t, ok)
	})

	t.Run("dropped without location", func(t *testing.T) {
		_, ok := Activity(domain.RawActivity{Title: "Something"})
		assert.False(t, ok)
	})

	t.Run("dropped when title cleans to empty", func(t *testing.T) {
		_, ok := Activity(domain.RawActivity{
			Title:    "<br/> <p></p>",
			Location: "Somewhere",
		})
		assert.False(t, ok)
	})
}

func TestActivities(t *testing.T) {
	raws := []domain.RawActivity{
		{ID: "1", Title: "Keep me", Location: "Here"},
		{ID: "2", Title: "", Location: "Dropped"},
		{ID: "3", Title: "Dropped too", Location: "  "},
		{ID: "4", Title: "Also kept", Location: "There"},
	}

	out := Activities(raws)

	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "4", out[1].ID)
}

func TestActivities_EmptyInput(t *testing.T) {
	out := Activities(nil)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
