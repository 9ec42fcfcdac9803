package experiments

import (
	"bytes"
	"strings"
	"testing"

	"bandit/bandit"
	"bandit/experiments/metrics"
	"bandit/rng"
	"bandit/strategy"

	"github.com/stretchr/testify/require"
)

func testSetup() Setup {
	return Setup{
		Arms:  4,
		Steps: 50,
		Seed:  12,
		Strategies: []metrics.StrategyConfig{
			{ID: 1, Kind: KindEpsilonGreedy, Epsilon: 0.1},
			{ID: 2, Kind: KindUCB, C2: 2},
			{ID: 3, Kind: KindThompson},
		},
	}
}

func TestRun(t *testing.T) {
	t.Run("running every strategy", func(t *testing.T) {
		setup := testSetup()

		result, err := Run(setup)

		require.NoError(t, err)
		require.Len(t, result.Runs, 3)
		require.Len(t, result.Steps, 3*setup.Steps, "Should record every step of every strategy")
		for i, run := range result.Runs {
			require.Equal(t, setup.Strategies[i].ID, run.Strategy)
			require.Equal(t, int64(setup.Steps), run.Steps)
			require.Equal(t, int64(setup.Steps), run.Explorations+run.Exploitations,
				"Every selection should be either exploration or exploitation")
			require.LessOrEqual(t, run.BestArmPulls, setup.Steps)
			require.GreaterOrEqual(t, run.Regret, 0.0)
		}
	})

	t.Run("reproducing results with equal seeds", func(t *testing.T) {
		first, err := Run(testSetup())
		require.NoError(t, err)
		second, err := Run(testSetup())
		require.NoError(t, err)

		require.Equal(t, first.Steps, second.Steps)
		require.Equal(t, first.Bandit.Probabilities(), second.Bandit.Probabilities())
	})

	t.Run("rejecting an empty setup", func(t *testing.T) {
		_, err := Run(Setup{Arms: 3, Steps: 10})
		require.ErrorIs(t, err, bandit.ErrInvalidParameter)
	})

	t.Run("rejecting an unknown strategy", func(t *testing.T) {
		setup := testSetup()
		setup.Strategies = []metrics.StrategyConfig{{ID: 1, Kind: "softmax"}}

		_, err := Run(setup)
		require.ErrorIs(t, err, bandit.ErrInvalidParameter)
	})

	t.Run("rejecting a zero strategy id", func(t *testing.T) {
		setup := testSetup()
		setup.Strategies = []metrics.StrategyConfig{{ID: 0, Kind: KindEpsilonGreedy, Epsilon: 0.1}}

		_, err := Run(setup)
		require.ErrorIs(t, err, bandit.ErrInvalidParameter, "Zero id should not be accepted")
	})

	t.Run("rejecting duplicate strategy ids", func(t *testing.T) {
		setup := testSetup()
		setup.Strategies[2].ID = setup.Strategies[0].ID

		_, err := Run(setup)
		require.ErrorIs(t, err, bandit.ErrInvalidParameter)
	})

	t.Run("keeping strategy streams apart from the bandit", func(t *testing.T) {
		setup := testSetup()
		banditDraws := rng.Derive(setup.Seed, banditStream)
		first := banditDraws.Uint64()
		for _, config := range setup.Strategies {
			require.NotEqual(t, first, rng.Derive(setup.Seed, config.ID).Uint64(),
				"Strategy %d should not replay the bandit's draws", config.ID)
		}
	})

	t.Run("defaulting the exploration constant", func(t *testing.T) {
		s, err := NewStrategy(metrics.StrategyConfig{Kind: KindUCB}, 3, rng.New(1))
		require.NoError(t, err)
		require.Equal(t, "ucb(c2=2)", s.(*strategy.UCB).String())
	})

	t.Run("rejecting zero arms", func(t *testing.T) {
		setup := testSetup()
		setup.Arms = 0

		_, err := Run(setup)
		require.ErrorIs(t, err, bandit.ErrInvalidParameter)
	})
}

func TestNewStrategy(t *testing.T) {
	t.Run("building every kind", func(t *testing.T) {
		for _, kind := range Kinds {
			s, err := NewStrategy(metrics.StrategyConfig{Kind: kind, Epsilon: 0.2, C2: 1}, 3, rng.New(1))
			require.NoError(t, err, "Should build %s", kind)
			require.NotNil(t, s)
		}
	})

	t.Run("passing epsilon-greedy parameters", func(t *testing.T) {
		s, err := NewStrategy(metrics.StrategyConfig{Kind: KindEpsilonGreedy, Epsilon: 0.3, Decay: 0.1}, 3, rng.NewReplay(0.9))
		require.NoError(t, err)

		e := s.(*strategy.EpsilonGreedy)
		require.Equal(t, 0.3, e.Epsilon())
		e.SelectArm()
		require.InDelta(t, 0.2, e.Epsilon(), 1e-12)
	})

	t.Run("rejecting invalid epsilon", func(t *testing.T) {
		_, err := NewStrategy(metrics.StrategyConfig{Kind: KindEpsilonGreedy, Epsilon: 2}, 3, rng.New(1))
		require.ErrorIs(t, err, bandit.ErrInvalidParameter)
	})
}

func TestReport(t *testing.T) {
	setup := testSetup()
	result, err := Run(setup)
	require.NoError(t, err)

	t.Run("without trace", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Report(metrics.NewWriter(&buf), setup, result, false))

		out := buf.String()
		require.Contains(t, out, "id,kind,epsilon,decay,c2")
		require.Contains(t, out, "strategy,name,steps")
		require.NotContains(t, out, "strategy,step,arm,regret")
	})

	t.Run("with trace", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Report(metrics.NewWriter(&buf), setup, result, true))

		out := buf.String()
		require.Contains(t, out, "strategy,step,arm,regret")
		require.Equal(t, (1+3+1)*2+(1+3*setup.Steps+1), strings.Count(out, "\n"), "Should write three tables of header, rows and blank line")
	})
}
