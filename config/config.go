package config

import (
	"fmt"
	"math"
	"strings"

	"bandit/experiments"
	"bandit/experiments/metrics"
	"bandit/meta"

	"golang.org/x/exp/slices"
)

// Config holds the simulation settings of the command line.
type Config struct {
	Arms       int
	Steps      int
	Seed       uint64
	Strategies []string

	// Strategy parameters
	Epsilon float64
	Decay   float64
	C2      float64

	// Reporting
	Trace    bool
	LogLevel string
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Arms:       meta.ARMS,
		Steps:      meta.STEPS,
		Strategies: append([]string(nil), experiments.Kinds...),
		Epsilon:    meta.EPSILON,
		C2:         meta.EXPLORATION_CONSTANT,
		LogLevel:   "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Arms <= 0 {
		return fmt.Errorf("arms must be positive")
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative")
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	for _, kind := range c.Strategies {
		if !slices.Contains(experiments.Kinds, kind) {
			return fmt.Errorf("unknown strategy %q, expected one of %s", kind, strings.Join(experiments.Kinds, ", "))
		}
	}
	if math.IsNaN(c.Epsilon) || c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1]")
	}
	if c.Decay < 0 {
		return fmt.Errorf("decay must not be negative")
	}
	if c.C2 <= 0 {
		return fmt.Errorf("c2 must be positive")
	}
	return nil
}

// Setup turns the config into an experiment, numbering strategies from 1.
func (c *Config) Setup() experiments.Setup {
	configs := make([]metrics.StrategyConfig, 0, len(c.Strategies))
	for i, kind := range c.Strategies {
		config := metrics.StrategyConfig{ID: i + 1, Kind: kind}
		switch kind {
		case experiments.KindEpsilonGreedy:
			config.Epsilon = c.Epsilon
			config.Decay = c.Decay
		case experiments.KindUCB:
			config.C2 = c.C2
		}
		configs = append(configs, config)
	}

	return experiments.Setup{
		Arms:       c.Arms,
		Steps:      c.Steps,
		Seed:       c.Seed,
		Strategies: configs,
	}
}
