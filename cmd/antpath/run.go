package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antpath/aco"
	"github.com/katalvlaran/antpath/config"
	"github.com/katalvlaran/antpath/report"
)

// Distance range of --random-nodes instances.
const (
	randomMinDistance = 1.0
	randomMaxDistance = 10.0
)

type runFlags struct {
	configPath  string
	colonySize  int
	iterations  int
	seed        int64
	workers     int
	aggregation string
	evaporation float64
	format      string
	quiet       bool
	randomNodes int
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the colony and print the route-frequency table",
		Long: `Run the colony for the configured number of iterations.

The pheromone table is printed after every iteration (unless --quiet), then the
route-frequency table and the best route. Flags override config values, which
override ANTPATH_* environment variables and built-in defaults.

Without a seed (--seed, random_seed or ANTPATH_RANDOM_SEED) a time-based seed
is chosen and logged so the run can be repeated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColony(cmd, a, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (yaml, json or toml)")
	cmd.Flags().IntVar(&f.colonySize, "colony-size", aco.DefaultColonySize, "Ants per iteration")
	cmd.Flags().IntVar(&f.iterations, "iterations", aco.DefaultIterations, "Number of iterations")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (deterministic mode)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Concurrent ants (0 = GOMAXPROCS, 1 = sequential)")
	cmd.Flags().StringVar(&f.aggregation, "aggregation", aco.AggregateCompounding.String(), "Deposit aggregation: compounding or normalized")
	cmd.Flags().Float64Var(&f.evaporation, "evaporation", aco.DefaultEvaporationRate, "Evaporation rate per iteration")
	cmd.Flags().StringVarP(&f.format, "format", "o", string(report.FormatText), "Output format: text, yaml or json")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the pheromone table after every iteration")
	cmd.Flags().IntVar(&f.randomNodes, "random-nodes", 0, "Generate a random symmetric instance with N nodes")

	return cmd
}

// applyFlags copies every explicitly set flag onto cfg.
func applyFlags(cmd *cobra.Command, f *runFlags, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("colony-size") {
		cfg.ColonySize = f.colonySize
	}
	if flags.Changed("iterations") {
		cfg.IterationCount = f.iterations
	}
	if flags.Changed("seed") {
		cfg.SetSeed(f.seed)
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("aggregation") {
		cfg.Aggregation = f.aggregation
	}
	if flags.Changed("evaporation") {
		cfg.EvaporationRate = f.evaporation
	}
}

func runColony(cmd *cobra.Command, a *app, f *runFlags) error {
	format, err := report.ParseFormat(f.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)

	seed, ok := cfg.Seed()
	if !ok {
		seed = time.Now().UnixNano()
		cfg.SetSeed(seed)
	}

	if f.randomNodes != 0 {
		d, err := aco.RandomDistances(f.randomNodes, seed, randomMinDistance, randomMaxDistance)
		if err != nil {
			return fmt.Errorf("--random-nodes: %w", err)
		}
		cfg.DistanceMatrix = d.Rows()
		cfg.NodeCount = 0
	}

	runID := uuid.NewString()[:8]
	logger := a.logger.With("run", runID)

	w := report.NewWriter(a.out, format, !a.noColor)
	defer w.Close()

	var hookErr error
	opts := []aco.Option{}
	if !f.quiet {
		opts = append(opts, aco.WithOnIteration(func(res aco.IterationResult) {
			if hookErr == nil {
				hookErr = w.Iteration(res)
			}
		}))
	}

	dist, cfgOpts, err := cfg.Build()
	if err != nil {
		return err
	}
	col, err := aco.NewColony(dist, append(cfgOpts, opts...)...)
	if err != nil {
		return err
	}

	o := col.Options()
	logger.Info("starting colony",
		"seed", seed,
		"nodes", dist.Len(),
		"ants", o.ColonySize,
		"iterations", o.Iterations,
		"aggregation", o.Aggregation.String(),
		"workers", o.Workers,
	)

	started := time.Now()
	if _, err = col.Run(); err != nil {
		logger.Error("colony aborted", "iteration", col.Iteration(), "err", err)
		return err
	}
	if hookErr != nil {
		return fmt.Errorf("writing iteration output: %w", hookErr)
	}

	summary := report.NewSummary(runID, col, dist)
	logger.Info("colony finished", "elapsed", time.Since(started), "distinct_routes", len(summary.Routes))
	if summary.Best != nil {
		logger.Debug("best route", "route", aco.Route(summary.Best.Route).Key(), "cost", summary.Best.Cost)
	}

	if err = w.Summary(summary); err != nil {
		return err
	}

	return w.Close()
}
