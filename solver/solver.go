// Package solver drives a strategy against a bandit and tracks cumulative
// regret.
package solver

import (
	"fmt"

	"bandit/bandit"
	"bandit/strategy"

	"github.com/rs/zerolog/log"
)

type Option func(s *Solver)

// WithMetrics reports every run to collector.
func WithMetrics(collector Collector) Option {
	return func(s *Solver) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type Solver struct {
	bandit   *bandit.Bandit
	strategy strategy.Strategy
	actions  []int
	regret   float64
	regrets  []float64
	metrics  Collector
	last     RunMetrics
}

// New binds a bandit and a strategy. Both are required.
func New(b *bandit.Bandit, s strategy.Strategy, options ...Option) (*Solver, error) {
	if b == nil {
		return nil, fmt.Errorf("bandit is required: %w", bandit.ErrInvalidParameter)
	}
	if s == nil {
		return nil, fmt.Errorf("strategy is required: %w", bandit.ErrInvalidParameter)
	}

	sv := &Solver{
		bandit:   b,
		strategy: s,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(sv)
	}
	return sv, nil
}

// Run plays steps rounds, appending to the history of earlier runs. If a step
// fails, the steps before it stay recorded.
func (s *Solver) Run(steps int) error {
	if steps < 0 {
		return fmt.Errorf("step count must not be negative, got %d: %w", steps, bandit.ErrInvalidParameter)
	}
	if steps == 0 {
		return nil
	}

	s.metrics.Start()
	defer func() {
		s.last = s.metrics.Complete(s.regret)
	}()

	for i := 0; i < steps; i++ {
		if err := s.step(); err != nil {
			return fmt.Errorf("step %d: %w", len(s.actions)+1, err)
		}
	}

	log.Debug().Msgf("ran %d steps, cumulative regret %.4f", steps, s.regret)
	return nil
}

func (s *Solver) step() error {
	arm := s.strategy.SelectArm()
	reward, err := s.bandit.Sample(arm)
	if err != nil {
		return err
	}
	if err := s.strategy.Update(arm, reward); err != nil {
		return err
	}

	regret, err := s.bandit.Regret(arm)
	if err != nil {
		return err
	}
	s.actions = append(s.actions, arm)
	s.regret += regret
	s.regrets = append(s.regrets, s.regret)
	s.metrics.AddStep(reward)
	return nil
}

// Reset clears the history and cumulative regret. The strategy keeps what it
// has learned.
func (s *Solver) Reset() {
	s.actions = nil
	s.regrets = nil
	s.regret = 0
	s.last = RunMetrics{}
}

// Actions returns a copy of the arms pulled so far, in order.
func (s *Solver) Actions() []int {
	return append([]int(nil), s.actions...)
}

// Regrets returns a copy of the cumulative regret after every step.
func (s *Solver) Regrets() []float64 {
	return append([]float64(nil), s.regrets...)
}

func (s *Solver) Regret() float64 {
	return s.regret
}

func (s *Solver) Steps() int {
	return len(s.actions)
}

// Metrics returns the statistics of the last run.
func (s *Solver) Metrics() RunMetrics {
	return s.last
}
