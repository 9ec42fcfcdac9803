package experiments

import (
	"fmt"

	"bandit/bandit"
	"bandit/experiments/metrics"
	"bandit/rng"
	"bandit/solver"
	"bandit/strategy"

	"github.com/rs/zerolog/log"
)

const (
	KindEpsilonGreedy = "epsilon-greedy"
	KindUCB           = "ucb"
	KindThompson      = "thompson"
)

// banditStream is the derivation id of the bandit's randomness. Strategy ids
// are positive, so no strategy shares it.
const banditStream = -1

// Kinds lists the supported strategy kinds.
var Kinds = []string{KindEpsilonGreedy, KindUCB, KindThompson}

type Setup struct {
	Arms       int
	Steps      int
	Seed       uint64
	Strategies []metrics.StrategyConfig
}

type Result struct {
	Bandit *bandit.Bandit
	Runs   []metrics.RunRecord
	Steps  []metrics.StepRecord
}

// Run plays every strategy of the setup, one after another, against the same
// bandit.
func Run(setup Setup) (*Result, error) {
	if len(setup.Strategies) == 0 {
		return nil, fmt.Errorf("no strategies to run: %w", bandit.ErrInvalidParameter)
	}
	seen := make(map[int]bool, len(setup.Strategies))
	for _, config := range setup.Strategies {
		if config.ID <= 0 {
			return nil, fmt.Errorf("strategy id must be positive, got %d: %w", config.ID, bandit.ErrInvalidParameter)
		}
		if seen[config.ID] {
			return nil, fmt.Errorf("duplicate strategy id %d: %w", config.ID, bandit.ErrInvalidParameter)
		}
		seen[config.ID] = true
	}

	b, err := bandit.New(setup.Arms, rng.Derive(setup.Seed, banditStream))
	if err != nil {
		return nil, fmt.Errorf("failed to create bandit: %w", err)
	}
	best, bestProbe := b.Best()

	log.Info().Msgf("starting experiment with %d strategies on %d arms (best arm %d, p=%.4f)...",
		len(setup.Strategies), b.Arms(), best, bestProbe)

	result := &Result{Bandit: b}
	for i, config := range setup.Strategies {
		log.Info().Msgf("starting strategy %d of %d: %+v...", i+1, len(setup.Strategies), config)

		collector := solver.NewMetricsCollector()
		name := fmt.Sprintf("%s#%d", config.Kind, config.ID)
		observer := strategy.Observers(collector, strategy.LogObserver{Name: name})
		s, err := NewStrategy(config, b.Arms(), rng.Derive(setup.Seed, config.ID), strategy.WithObserver(observer))
		if err != nil {
			return nil, fmt.Errorf("failed to create strategy %d: %w", config.ID, err)
		}

		sv, err := solver.New(b, s, solver.WithMetrics(collector))
		if err != nil {
			return nil, fmt.Errorf("failed to create solver for strategy %d: %w", config.ID, err)
		}
		if err := sv.Run(setup.Steps); err != nil {
			return nil, fmt.Errorf("failed to run strategy %d: %w", config.ID, err)
		}

		actions := sv.Actions()
		pulls := 0
		for step, regret := range sv.Regrets() {
			if actions[step] == best {
				pulls++
			}
			result.Steps = append(result.Steps, metrics.StepRecord{
				Strategy: config.ID,
				Step:     step + 1,
				Arm:      actions[step],
				Regret:   regret,
			})
		}
		result.Runs = append(result.Runs, metrics.RunRecord{
			Strategy:     config.ID,
			Name:         fmt.Sprint(s),
			BestArmPulls: pulls,
			RunMetrics:   sv.Metrics(),
		})

		log.Info().Msgf("completed strategy %d of %d with regret %.4f", i+1, len(setup.Strategies), sv.Regret())
	}

	log.Info().Msg("completed experiment")
	return result, nil
}

// NewStrategy builds the strategy described by config.
func NewStrategy(config metrics.StrategyConfig, arms int, r rng.Rand, options ...strategy.Option) (strategy.Strategy, error) {
	switch config.Kind {
	case KindEpsilonGreedy:
		return strategy.NewEpsilonGreedy(arms, config.Epsilon, r, append(options, strategy.WithDecay(config.Decay))...)
	case KindUCB:
		if config.C2 != 0 { // Zero keeps the default constant
			options = append(options, strategy.WithExplorationConstant(config.C2))
		}
		return strategy.NewUCB(arms, options...)
	case KindThompson:
		return strategy.NewThompson(arms, r, options...)
	default:
		return nil, fmt.Errorf("unknown strategy kind %q: %w", config.Kind, bandit.ErrInvalidParameter)
	}
}

// Report writes the configs, run summaries and, with trace, every step.
func Report(w *metrics.Writer, setup Setup, result *Result, trace bool) error {
	if err := w.WriteStrategyConfigs(setup.Strategies); err != nil {
		return err
	}
	if err := w.WriteRunRecords(result.Runs); err != nil {
		return err
	}
	if trace {
		if err := w.WriteStepRecords(result.Steps); err != nil {
			return err
		}
	}
	return nil
}
