package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antpath/aco"
	"github.com/katalvlaran/antpath/config"
	"github.com/katalvlaran/antpath/report"
)

func newRoutesCmd(a *app) *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every route from the start node with its cost",
		Long: `List every route from the start node, cheapest first.

COST excludes the closing edge back to the start node, CLOSED includes it.
Instances above 10 nodes are rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			dist, _, err := cfg.Build()
			if err != nil {
				return err
			}
			all, err := aco.EnumerateRoutes(dist, cfg.StartNode)
			if err != nil {
				return err
			}
			a.logger.Debug("enumerated routes", "nodes", dist.Len(), "routes", len(all))

			w := report.NewWriter(a.out, f, !a.noColor)
			if err = w.Routes(all, dist); err != nil {
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (yaml, json or toml)")
	cmd.Flags().StringVarP(&format, "format", "o", string(report.FormatText), "Output format: text, yaml or json")

	return cmd
}
