package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oakway-labs/eventscout/internal/adapters/driven/storage/sqlite"
	"github.com/oakway-labs/eventscout/internal/adapters/driving/httpapi"
	"github.com/oakway-labs/eventscout/internal/config"
	"github.com/oakway-labs/eventscout/internal/logger"
	"github.com/oakway-labs/eventscout/internal/metrics"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			store, err := sqlite.NewStore(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()
			logger.Info("serve: user store at %s", store.Path())

			reg := metrics.NewRegistry()
			server := httpapi.New(buildService(cfg, reg), httpapi.Options{
				Users:          store,
				Metrics:        reg.Handler(),
				StaticDir:      cfg.Server.StaticDir,
				AllowedOrigins: cfg.Server.AllowedOrigins,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")

	return cmd
}
