package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakway-labs/eventscout/internal/config"
)

func newProvidersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List providers in waterfall order and whether they are live",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, p := range buildProviders(cfg) {
				status := "disabled (no credential)"
				if p.Enabled() {
					status = "enabled"
				}
				fmt.Fprintf(out, "%d. %-14s %s\n", i+1, p.Name(), status)
			}
			return nil
		},
	}
}
