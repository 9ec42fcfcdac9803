// Package strategy holds the arm selection policies of a bandit simulation.
// Every policy owns its belief about the arms and only learns from rewards it
// is told about through Update.
package strategy

import (
	"fmt"
	"math"

	"bandit/bandit"
	"bandit/meta"
)

// DefaultPrior is the optimistic initial estimate of every arm.
const DefaultPrior = meta.PRIOR

type Strategy interface {
	// SelectArm picks the arm to pull next, always in [0, arms).
	SelectArm() int
	// Update records the reward observed after pulling arm.
	Update(arm, reward int) error
}

type Option func(o *options)

type options struct {
	prior    float64
	decay    float64
	c2       float64
	observer Observer
}

func defaults() options {
	return options{
		prior:    DefaultPrior,
		c2:       meta.EXPLORATION_CONSTANT,
		observer: noObserver{},
	}
}

func WithPrior(prior float64) Option {
	return func(o *options) {
		o.prior = prior
	}
}

// WithDecay lowers epsilon by decay after every selection, down to zero.
// Negative decays are rejected by the constructor.
func WithDecay(decay float64) Option {
	return func(o *options) {
		o.decay = decay
	}
}

// WithExplorationConstant sets the squared exploration constant of UCB. It
// must be positive.
func WithExplorationConstant(c2 float64) Option {
	return func(o *options) {
		o.c2 = c2
	}
}

func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func (o options) validate() error {
	if math.IsNaN(o.prior) || math.IsInf(o.prior, 0) {
		return fmt.Errorf("prior %v is not finite: %w", o.prior, bandit.ErrInvalidParameter)
	}
	if math.IsNaN(o.decay) || o.decay < 0 {
		return fmt.Errorf("decay %v must not be negative: %w", o.decay, bandit.ErrInvalidParameter)
	}
	if math.IsNaN(o.c2) || math.IsInf(o.c2, 0) || o.c2 <= 0 {
		return fmt.Errorf("exploration constant %v must be positive: %w", o.c2, bandit.ErrInvalidParameter)
	}
	return nil
}

// apply builds options from the defaults and opts, then validates them.
func apply(opts []Option) (options, error) {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.validate()
}

// belief is the per-arm state shared by all policies.
type belief struct {
	counts    []int
	estimates []float64
}

func newBelief(arms int, prior float64) belief {
	estimates := make([]float64, arms)
	for i := range estimates {
		estimates[i] = prior
	}
	return belief{
		counts:    make([]int, arms),
		estimates: estimates,
	}
}

// Update folds reward into the running mean of arm. The count is incremented
// first so the first reward replaces the prior.
func (b *belief) Update(arm, reward int) error {
	if arm < 0 || arm >= len(b.counts) {
		return fmt.Errorf("update arm %d not in [0, %d): %w", arm, len(b.counts), bandit.ErrIndexOutOfRange)
	}
	if reward != bandit.Miss && reward != bandit.Hit {
		return fmt.Errorf("reward %d is not binary: %w", reward, bandit.ErrInvalidParameter)
	}

	b.counts[arm]++
	b.estimates[arm] += (float64(reward) - b.estimates[arm]) / float64(b.counts[arm])
	return nil
}

func (b *belief) Arms() int {
	return len(b.counts)
}

// Counts returns a copy of the pull count of every arm.
func (b *belief) Counts() []int {
	return append([]int(nil), b.counts...)
}

// Estimates returns a copy of the estimated value of every arm.
func (b *belief) Estimates() []float64 {
	return append([]float64(nil), b.estimates...)
}

func (b *belief) pulls() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

func validateArms(arms int) error {
	if arms <= 0 {
		return fmt.Errorf("arm count must be positive, got %d: %w", arms, bandit.ErrInvalidParameter)
	}
	return nil
}
