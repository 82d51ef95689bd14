package services

import (
	"context"
	"strings"
	"time"

	"github.com/oakway-labs/eventscout/internal/core/domain"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/core/ports/driving"
	"github.com/oakway-labs/eventscout/internal/logger"
	"github.com/oakway-labs/eventscout/internal/metrics"
	"github.com/oakway-labs/eventscout/internal/normaliser"
)

// Ensure ActivityService implements the interface.
var _ driving.ActivityService = (*ActivityService)(nil)

// waterfallThresholds gate each provider position: a provider is only
// queried while the accumulated result count is below its threshold.
// The first provider always runs. Thresholds trade latency and API
// cost against breadth once enough results have been collected.
var waterfallThresholds = []int{0, 10, 15, 20}

// ActivityService aggregates activities across providers with a
// priority waterfall and a sample-data fallback.
type ActivityService struct {
	providers []driven.Provider
	sampler   driven.SampleGenerator
	metrics   *metrics.Registry
}

// NewActivityService creates the orchestrator. Providers are queried
// in the order given, highest priority first. The metrics registry is
// optional.
func NewActivityService(provs []driven.Provider, sampler driven.SampleGenerator, reg *metrics.Registry) *ActivityService {
	return &ActivityService{
		providers: provs,
		sampler:   sampler,
		metrics:   reg,
	}
}

// Search runs the provider waterfall for the query and location.
//
// Provider failures are contained here: a provider that errors, times
// out, or returns garbage contributes zero results and the search
// carries on. Only missing request fields fail the call.
func (s *ActivityService) Search(ctx context.Context, query, location string) ([]domain.Activity, error) {
	query = strings.TrimSpace(query)
	location = strings.TrimSpace(location)
	if query == "" {
		if s.metrics != nil {
			s.metrics.ValidationFailures.Inc()
		}
		return nil, &domain.ValidationError{Field: "query"}
	}
	if location == "" {
		if s.metrics != nil {
			s.metrics.ValidationFailures.Inc()
		}
		return nil, &domain.ValidationError{Field: "location"}
	}

	started := time.Now()
	if s.metrics != nil {
		s.metrics.Searches.Inc()
		defer func() {
			s.metrics.SearchDuration.Observe(time.Since(started).Seconds())
		}()
	}

	logger.Info("search: %q near %q across %d providers", query, location, len(s.providers))

	var accumulated []domain.RawActivity
	for i, provider := range s.providers {
		if !s.shouldQuery(i, len(accumulated)) {
			logger.Debug("search: skipping %s, %d results already collected",
				provider.Name(), len(accumulated))
			continue
		}

		results, err := provider.Search(ctx, query, location)
		if err != nil {
			logger.Warn("search: provider %s failed: %v", provider.Name(), err)
			if s.metrics != nil {
				s.metrics.ProviderFailures.WithLabelValues(provider.Name()).Inc()
			}
			continue
		}

		if s.metrics != nil {
			s.metrics.ProviderResults.WithLabelValues(provider.Name()).Add(float64(len(results)))
		}
		accumulated = append(accumulated, results...)
	}

	// Sample data substitutes for an entirely empty result set; it is
	// never mixed with real provider records.
	if len(accumulated) == 0 && s.sampler != nil {
		logger.Info("search: no provider results, generating sample data")
		if s.metrics != nil {
			s.metrics.SampleFallbacks.Inc()
		}
		accumulated = s.sampler.Generate(query, location)
	}

	activities := normaliser.Activities(accumulated)
	logger.Info("search: returning %d activities (%d raw)", len(activities), len(accumulated))
	return activities, nil
}

// shouldQuery reports whether the provider at position i should run
// given the accumulated count. The first provider always runs; later
// positions past the configured thresholds reuse the last threshold.
func (s *ActivityService) shouldQuery(i, accumulated int) bool {
	if i == 0 {
		return true
	}
	threshold := waterfallThresholds[len(waterfallThresholds)-1]
	if i < len(waterfallThresholds) {
		threshold = waterfallThresholds[i]
	}
	return accumulated < threshold
}
