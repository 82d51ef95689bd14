package driven

import (
	"context"

	"github.com/oakway-labs/eventscout/internal/core/domain"
)

// Provider is a pluggable source of activity listings.
// Zero or more providers may be live at any time; a provider without a
// credential is still registered and simply returns no results.
type Provider interface {
	// Name returns the provider's display name, used as the Source tag
	// on every record it produces.
	Name() string

	// Enabled reports whether the provider is configured to make real
	// API calls. Disabled providers return empty results from Search.
	Enabled() bool

	// Search queries the provider for activities matching the free-text
	// query near the given location. A returned error means the call
	// failed as a whole; the orchestrator treats it as zero results and
	// never surfaces it to the caller.
	Search(ctx context.Context, query, location string) ([]domain.RawActivity, error)
}

// SampleGenerator produces synthetic activities when no provider
// returns results.
type SampleGenerator interface {
	// Generate returns deterministic sample activities for the query's
	// inferred category, interpolating query and location into fixed
	// templates.
	Generate(query, location string) []domain.RawActivity
}
