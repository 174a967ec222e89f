// Package config loads the parameters of a colony run from a file, the
// environment and built-in defaults, and turns them into aco values.
//
// Precedence (highest to lowest):
//  1. Explicit overrides applied by the caller (CLI flags)
//  2. Environment variables (ANTPATH_COLONY_SIZE, ANTPATH_RANDOM_SEED, ...)
//  3. Config file (YAML, JSON or TOML, picked by extension)
//  4. Built-in defaults (the four-node reference instance)
//
// Keys are snake_case; the camelCase spellings (colonySize, distanceMatrix,
// ...) are accepted as aliases.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/antpath/aco"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "ANTPATH"

// Config holds the recognized run options.
type Config struct {
	// NodeCount is the declared number of nodes; 0 derives it from DistanceMatrix.
	NodeCount int `mapstructure:"node_count"`
	// DistanceMatrix is the n×n symmetric, zero-diagonal cost table.
	DistanceMatrix [][]float64 `mapstructure:"distance_matrix"`
	// ColonySize is the number of ants per iteration.
	ColonySize int `mapstructure:"colony_size"`
	// IterationCount is the fixed iteration budget.
	IterationCount int `mapstructure:"iteration_count"`
	// PheromonePerRoute is the total pheromone one ant spreads.
	PheromonePerRoute float64 `mapstructure:"pheromone_per_route"`
	// EvaporationRate is subtracted from cells above it every iteration.
	EvaporationRate float64 `mapstructure:"evaporation_rate"`
	// StartNode is the first node of every route.
	StartNode int `mapstructure:"start_node"`
	// InitialPheromone is the uniform starting weight.
	InitialPheromone float64 `mapstructure:"initial_pheromone"`
	// RandomSeed enables deterministic mode when set.
	RandomSeed *int64 `mapstructure:"random_seed"`
	// Workers bounds ant concurrency (0 = GOMAXPROCS, 1 = sequential).
	Workers int `mapstructure:"workers"`
	// Aggregation is "compounding" (default) or "normalized".
	Aggregation string `mapstructure:"aggregation"`
	// StrictSelection fails on all-zero candidate weights.
	StrictSelection bool `mapstructure:"strict_selection"`
}

// aliases maps camelCase option names onto config keys.
var aliases = map[string]string{
	"nodeCount":         "node_count",
	"distanceMatrix":    "distance_matrix",
	"colonySize":        "colony_size",
	"iterationCount":    "iteration_count",
	"pheromonePerRoute": "pheromone_per_route",
	"evaporationRate":   "evaporation_rate",
	"startNode":         "start_node",
	"initialPheromone":  "initial_pheromone",
	"randomSeed":        "random_seed",
	"strictSelection":   "strict_selection",
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		DistanceMatrix:    aco.ExampleDistances(),
		ColonySize:        aco.DefaultColonySize,
		IterationCount:    aco.DefaultIterations,
		PheromonePerRoute: aco.DefaultPheromonePerRoute,
		EvaporationRate:   aco.DefaultEvaporationRate,
		StartNode:         aco.DefaultStartNode,
		InitialPheromone:  aco.DefaultInitialPheromone,
		Aggregation:       aco.AggregateCompounding.String(),
	}
}

// Load reads configuration from path (if non-empty), applies environment
// overrides and defaults. A missing path is an error; an empty path yields
// the defaults plus environment.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	}
	registerAliases(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file, ignoring the
// environment.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	registerAliases(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path; the format follows the file extension.
func Save(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	v.Set("node_count", cfg.NodeCount)
	v.Set("distance_matrix", cfg.DistanceMatrix)
	v.Set("colony_size", cfg.ColonySize)
	v.Set("iteration_count", cfg.IterationCount)
	v.Set("pheromone_per_route", cfg.PheromonePerRoute)
	v.Set("evaporation_rate", cfg.EvaporationRate)
	v.Set("start_node", cfg.StartNode)
	v.Set("initial_pheromone", cfg.InitialPheromone)
	v.Set("workers", cfg.Workers)
	v.Set("aggregation", cfg.Aggregation)
	v.Set("strict_selection", cfg.StrictSelection)
	if cfg.RandomSeed != nil {
		v.Set("random_seed", *cfg.RandomSeed)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// Seed returns the configured seed and whether one was set.
func (c *Config) Seed() (int64, bool) {
	if c.RandomSeed == nil {
		return 0, false
	}

	return *c.RandomSeed, true
}

// SetSeed fixes the random seed.
func (c *Config) SetSeed(seed int64) { c.RandomSeed = &seed }

// Distances validates the declared node count and the distance matrix.
//
// Errors: aco.ErrNodeCount, aco.ErrNodeCountMismatch, or any distance
// sentinel from aco.NewDistances.
func (c *Config) Distances() (*aco.Distances, error) {
	if c.NodeCount != 0 && c.NodeCount < 2 {
		return nil, fmt.Errorf("config: node_count=%d: %w", c.NodeCount, aco.ErrNodeCount)
	}
	d, err := aco.NewDistances(c.DistanceMatrix)
	if err != nil {
		return nil, fmt.Errorf("config: distance_matrix: %w", err)
	}
	if c.NodeCount != 0 && c.NodeCount != d.Len() {
		return nil, fmt.Errorf("config: node_count=%d, matrix is %d×%d: %w", c.NodeCount, d.Len(), d.Len(), aco.ErrNodeCountMismatch)
	}

	return d, nil
}

// Options converts c into aco functional options. The seed option is only
// present when RandomSeed is set.
func (c *Config) Options() ([]aco.Option, error) {
	agg, err := aco.ParseAggregation(c.Aggregation)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := []aco.Option{
		aco.WithColonySize(c.ColonySize),
		aco.WithIterations(c.IterationCount),
		aco.WithPheromonePerRoute(c.PheromonePerRoute),
		aco.WithEvaporationRate(c.EvaporationRate),
		aco.WithStartNode(c.StartNode),
		aco.WithInitialPheromone(c.InitialPheromone),
		aco.WithWorkers(c.Workers),
		aco.WithAggregation(agg),
		aco.WithStrictSelection(c.StrictSelection),
	}
	if seed, ok := c.Seed(); ok {
		opts = append(opts, aco.WithSeed(seed))
	}

	return opts, nil
}

// Build validates the whole configuration and returns the distance table and
// the options of the run. Every failure is a configuration error.
func (c *Config) Build() (*aco.Distances, []aco.Option, error) {
	d, err := c.Distances()
	if err != nil {
		return nil, nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, nil, err
	}
	if err = aco.NewOptions(opts...).Validate(d.Len()); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	return d, opts, nil
}

// Validate reports the first configuration error, if any.
func (c *Config) Validate() error {
	_, _, err := c.Build()
	return err
}

// IsConfigurationError reports whether err stems from invalid parameters
// rather than from reading or decoding the file.
func IsConfigurationError(err error) bool {
	return errors.Is(err, aco.ErrConfiguration)
}

// newViper returns a viper instance with defaults and environment
// overrides wired.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// random_seed has no default, bind it so the environment can set it.
	_ = v.BindEnv("random_seed")

	return v
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("node_count", d.NodeCount)
	v.SetDefault("distance_matrix", d.DistanceMatrix)
	v.SetDefault("colony_size", d.ColonySize)
	v.SetDefault("iteration_count", d.IterationCount)
	v.SetDefault("pheromone_per_route", d.PheromonePerRoute)
	v.SetDefault("evaporation_rate", d.EvaporationRate)
	v.SetDefault("start_node", d.StartNode)
	v.SetDefault("initial_pheromone", d.InitialPheromone)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("aggregation", d.Aggregation)
	v.SetDefault("strict_selection", d.StrictSelection)
}

// registerAliases must run after ReadInConfig: viper moves values already
// read under an alias onto the real key at registration time.
func registerAliases(v *viper.Viper) {
	for alias, key := range aliases {
		v.RegisterAlias(alias, key)
	}
}
