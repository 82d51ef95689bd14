// Package yelp is a stub adapter for the Yelp Events API.
// The events endpoint needs an approved API key we do not hold in this
// revision, so Search always returns empty. The query-to-category
// mapping the live call will need is already here and tested.
package yelp

import (
	"context"
	"strings"

	"github.com/oakway-labs/eventscout/internal/core/domain"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

// Name is the source tag Yelp records will carry once the adapter
// goes live.
const Name = "Yelp"

// Config holds the Yelp adapter configuration.
type Config struct {
	// APIKey is the Yelp Fusion key. Unused until the events endpoint
	// is available to us.
	APIKey string
}

// Provider is a no-op placeholder satisfying the Provider interface.
// The orchestrator is designed for four providers even when only a
// subset is live.
type Provider struct {
	cfg Config
}

// New creates a Yelp stub provider.
func New(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

// Name returns the provider's display name.
func (p *Provider) Name() string {
	return Name
}

// Enabled always reports false in this revision.
func (p *Provider) Enabled() bool {
	return false
}

// Search returns no results. It never errors, so the orchestrator
// treats Yelp exactly like a live provider that found nothing.
func (p *Provider) Search(_ context.Context, query, location string) ([]domain.RawActivity, error) {
	logger.Debug("yelp: adapter not live, skipping %q near %q", query, location)
	return nil, nil
}

// categoryKeywords maps query vocabulary to Yelp event categories,
// checked in order with first match winning.
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"music", []string{"music", "concert", "festival", "band"}},
	{"food-and-drink", []string{"food", "restaurant", "dining", "wine", "beer"}},
	{"business", []string{"tech", "technology", "programming", "coding"}},
	{"visual-arts", []string{"art", "gallery", "exhibition"}},
	{"sports-and-fitness", []string{"sport", "fitness", "running", "yoga"}},
}

// CategoryForQuery maps a free-text query onto Yelp's event category
// slugs, defaulting to "other".
func CategoryForQuery(query string) string {
	q := strings.ToLower(query)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(q, word) {
				return entry.category
			}
		}
	}
	return "other"
}
