package main

import (
	"fmt"
	"strings"

	"bandit/config"
	"bandit/experiments"
	"bandit/experiments/metrics"
	"bandit/logger"
	"bandit/rng"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	env := viper.New()

	cmd := &cobra.Command{
		Use:   "bandit",
		Short: "Multi-armed bandit simulator",
		Long: `Simulates a Bernoulli multi-armed bandit and compares exploration
strategies by their cumulative regret.

Results are written to stdout as CSV tables; logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return applyEnv(cmd.Flags(), env)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Arms, "arms", cfg.Arms, "Number of bandit arms")
	flags.IntVar(&cfg.Steps, "steps", cfg.Steps, "Steps per strategy")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed of the randomness source (0 for time-based)")
	flags.StringSliceVar(&cfg.Strategies, "strategies", cfg.Strategies, "Strategies to compare ("+strings.Join(experiments.Kinds, ", ")+")")

	// Strategy parameters
	flags.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "Exploration rate of epsilon-greedy")
	flags.Float64Var(&cfg.Decay, "decay", cfg.Decay, "Epsilon decay per step")
	flags.Float64Var(&cfg.C2, "c2", cfg.C2, "Squared exploration constant of UCB")

	// Reporting
	flags.BoolVar(&cfg.Trace, "trace", cfg.Trace, "Print the per-step regret trace")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Bind flags to viper for environment variable support
	_ = env.BindPFlags(flags)
	env.SetEnvPrefix("BANDIT")
	env.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	env.AutomaticEnv()

	return cmd
}

// applyEnv copies BANDIT_* environment values into flags the user did not set.
func applyEnv(flags *pflag.FlagSet, env *viper.Viper) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !env.IsSet(f.Name) {
			return
		}
		if setErr := flags.Set(f.Name, env.GetString(f.Name)); setErr != nil {
			err = fmt.Errorf("invalid environment value for %s: %w", f.Name, setErr)
		}
	})
	return err
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rng.TimeSeed()
	}
	log.Info().Msgf("using seed %d", cfg.Seed)

	setup := cfg.Setup()
	result, err := experiments.Run(setup)
	if err != nil {
		return err
	}
	log.Info().Msgf("bandit: %s", result.Bandit)

	return experiments.Report(metrics.NewWriter(cmd.OutOrStdout()), setup, result, cfg.Trace)
}
