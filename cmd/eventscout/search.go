package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakway-labs/eventscout/internal/config"
)

func newSearchCmd(flags *rootFlags) *cobra.Command {
	var location string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a one-off activity search from the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			svc := buildService(cfg, nil)
			activities, err := svc.Search(cmd.Context(), strings.Join(args, " "), location)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(activities)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d activities\n\n", len(activities))
			for _, a := range activities {
				fmt.Fprintf(out, "%s  %s\n", a.Date, a.Title)
				fmt.Fprintf(out, "    %s | %s | %s\n", a.Time, a.Location, a.Source)
				if a.Description != "" {
					fmt.Fprintf(out, "    %s\n", a.Description)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Location to search near (required)")
	cmd.MarkFlagRequired("location")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}
