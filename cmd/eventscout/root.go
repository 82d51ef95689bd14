package main

import (
	"github.com/spf13/cobra"

	"github.com/oakway-labs/eventscout/internal/config"
	"github.com/oakway-labs/eventscout/internal/core/ports/driven"
	"github.com/oakway-labs/eventscout/internal/core/services"
	"github.com/oakway-labs/eventscout/internal/logger"
	"github.com/oakway-labs/eventscout/internal/metrics"
	"github.com/oakway-labs/eventscout/internal/providers/eventbrite"
	"github.com/oakway-labs/eventscout/internal/providers/meetup"
	"github.com/oakway-labs/eventscout/internal/providers/ticketmaster"
	"github.com/oakway-labs/eventscout/internal/providers/yelp"
	"github.com/oakway-labs/eventscout/internal/sample"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "eventscout",
		Short: "Aggregate activity listings from multiple event providers",
		Long: "EventScout queries event providers in priority order, normalizes " +
			"their listings into one schema, and falls back to sample data when " +
			"nothing real is available.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetVerbose(flags.verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a TOML config file")

	cmd.AddCommand(newServeCmd(&flags))
	cmd.AddCommand(newSearchCmd(&flags))
	cmd.AddCommand(newProvidersCmd(&flags))

	return cmd
}

// buildProviders wires the adapters in waterfall priority order.
func buildProviders(cfg *config.Config) []driven.Provider {
	return []driven.Provider{
		eventbrite.New(eventbrite.Config{Token: cfg.Providers.Eventbrite.APIKey}),
		ticketmaster.New(ticketmaster.Config{APIKey: cfg.Providers.Ticketmaster.APIKey}),
		yelp.New(yelp.Config{APIKey: cfg.Providers.Yelp.APIKey}),
		meetup.New(meetup.Config{APIKey: cfg.Providers.Meetup.APIKey}),
	}
}

// buildService assembles the orchestrator. The metrics registry may be
// nil for one-off CLI invocations.
func buildService(cfg *config.Config, reg *metrics.Registry) *services.ActivityService {
	return services.NewActivityService(buildProviders(cfg), sample.New(), reg)
}
