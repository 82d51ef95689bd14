package eventbrite

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
)

const samplePayload = `{
	"events": [
		{
			"id": "101",
			"name": {"text": "Jazz Night"},
			"description": {"text": "An evening of live jazz"},
			"url": "https://eventbrite.com/e/101",
			"start": {"local": "2025-06-15T19:30:00"},
			"venue": {
				"name": "The Blue Room",
				"address": {"localized_area_display": "Austin, TX"}
			},
			"category": {"name": "Music"},
			"logo": {"url": "https://img.evbuc.com/101.jpg"}
		},
		{
			"id": 202,
			"name": {"text": "Bare Minimum Event"}
		}
	]
}`

func TestNew(t *testing.T) {
	t.Run("implements Provider interface", func(t *testing.T) {
		var _ driven.Provider = New(Config{})
	})

	t.Run("defaults applied", func(t *testing.T) {
		p := New(Config{Token: "tok"})
		assert.Equal(t, DefaultBaseURL, p.cfg.BaseURL)
		assert.Equal(t, Name, p.Name())
	})
}

func TestProvider_Enabled(t *testing.T) {
	assert.False(t, New(Config{}).Enabled())
	assert.True(t, New(Config{Token: "tok"}).Enabled())
}

func TestProvider_Search_Disabled(t *testing.T) {
	p := New(Config{})

	got, err := p.Search(context.Background(), "jazz", "Austin")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProvider_Search(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"q":                r.URL.Query().Get("q"),
			"location.address": r.URL.Query().Get("location.address"),
			"location.within":  r.URL.Query().Get("location.within"),
			"sort_by":          r.URL.Query().Get("sort_by"),
			"expand":           r.URL.Query().Get("expand"),
			"page_size":        r.URL.Query().Get("page_size"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	p := New(Config{Token: "secret", BaseURL: srv.URL})

	got, err := p.Search(context.Background(), "jazz", "Austin")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "jazz", gotQuery["q"])
	assert.Equal(t, "Austin", gotQuery["location.address"])
	assert.Equal(t, "25mi", gotQuery["location.within"])
	assert.Equal(t, "date", gotQuery["sort_by"])
	assert.Equal(t, "venue,organizer", gotQuery["expand"])
	assert.Equal(t, "20", gotQuery["page_size"])

	full := got[0]
	assert.Equal(t, "101", full.ID)
	assert.Equal(t, "Jazz Night", full.Title)
	assert.Equal(t, "An evening of live jazz", full.Description)
	assert.Equal(t, "The Blue Room, Austin, TX", full.Location)
	assert.Equal(t, "2025-06-15", full.Date)
	assert.Equal(t, "19:30", full.Time)
	assert.Equal(t, "Music", full.Category)
	assert.Equal(t, "https://img.evbuc.com/101.jpg", full.Image)
	assert.Equal(t, Name, full.Source)
	assert.Equal(t, "https://eventbrite.com/e/101", full.Link)

	// Numeric ID coerced, missing sub-objects degrade to empty fields.
	sparse := got[1]
	assert.Equal(t, "202", sparse.ID)
	assert.Equal(t, "Bare Minimum Event", sparse.Title)
	assert.Empty(t, sparse.Description)
	assert.Empty(t, sparse.Location)
	assert.Empty(t, sparse.Date)
	assert.Empty(t, sparse.Time)
	assert.Equal(t, "Event", sparse.Category)
	assert.Empty(t, sparse.Image)
}

func TestProvider_Search_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := New(Config{Token: "bad", BaseURL: srv.URL})

	_, err := p.Search(context.Background(), "jazz", "Austin")
	assert.Error(t, err)
}

func TestProvider_Search_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"events": [{`))
	}))
	defer srv.Close()

	p := New(Config{Token: "tok", BaseURL: srv.URL})

	_, err := p.Search(context.Background(), "jazz", "Austin")
	assert.Error(t, err)
}

func TestProvider_Search_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	p := New(Config{Token: "tok", BaseURL: srv.URL})

	got, err := p.Search(context.Background(), "jazz", "Austin")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSplitLocal(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedDate string
		expectedTime string
	}{
		{"combined timestamp", "2025-06-15T19:30:00", "2025-06-15", "19:30"},
		{"no separator", "2025-06-15", "2025-06-15", ""},
		{"empty", "", "", ""},
		{"short time part", "2025-06-15T19", "2025-06-15", "19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock := splitLocal(tt.input)
			assert.Equal(t, tt.expectedDate, date)
			assert.Equal(t, tt.expectedTime, clock)
		})
	}
}
