package driving

import (
	"context"

	"github.com/oakway-labs/eventscout/internal/core/domain"
)

// ActivityService aggregates activity listings across providers.
type ActivityService interface {
	// Search runs the provider waterfall for the query and location and
	// returns the normalized result set. Both arguments are required;
	// a missing one yields a *domain.ValidationError. Provider failures
	// never surface here.
	Search(ctx context.Context, query, location string) ([]domain.Activity, error)
}
