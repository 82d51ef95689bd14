// Package meetup is a stub adapter for the Meetup GraphQL API.
// Meetup requires an OAuth flow we have not provisioned in this
// revision, so Search always returns empty.
package meetup

import (
	"context"

	"github.com/oakway-labs/eventscout/internal/core/domain"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

// Name is the source tag Meetup records will carry once the adapter
// goes live.
const Name = "Meetup"

// Config holds the Meetup adapter configuration.
type Config struct {
	// APIKey is reserved for the OAuth client credential.
	APIKey string
}

// Provider is a no-op placeholder satisfying the Provider interface.
type Provider struct {
	cfg Config
}

// New creates a Meetup stub provider.
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

// Search returns no results and never errors.
func (p *Provider) Search(_ context.Context, query, location string) ([]domain.RawActivity, error) {
	logger.Debug("meetup: adapter not live, skipping %q near %q", query, location)
	return nil, nil
}
