package strategy

import (
	"fmt"
	"math"

	"bandit/bandit"
	"bandit/rng"

	"gonum.org/v1/gonum/floats"
)

// EpsilonGreedy explores a uniformly random arm with probability epsilon and
// otherwise exploits the arm with the highest estimate. The best estimated arm
// is not excluded from exploration.
type EpsilonGreedy struct {
	belief
	epsilon  float64
	decay    float64
	rand     rng.Rand
	observer Observer
}

func NewEpsilonGreedy(arms int, epsilon float64, r rng.Rand, opts ...Option) (*EpsilonGreedy, error) {
	if err := validateArms(arms); err != nil {
		return nil, err
	}
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon > 1 {
		return nil, fmt.Errorf("epsilon %v outside [0, 1]: %w", epsilon, bandit.ErrInvalidParameter)
	}
	if r == nil {
		return nil, fmt.Errorf("randomness source is required: %w", bandit.ErrInvalidParameter)
	}

	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	return &EpsilonGreedy{
		belief:   newBelief(arms, o.prior),
		epsilon:  epsilon,
		decay:    o.decay,
		rand:     r,
		observer: o.observer,
	}, nil
}

func (e *EpsilonGreedy) SelectArm() int {
	var arm int
	if e.rand.Float64() < e.epsilon {
		arm = e.rand.Intn(len(e.counts))
		e.observer.Explored(arm)
	} else {
		arm = floats.MaxIdx(e.estimates)
		e.observer.Exploited(arm)
	}

	if e.decay > 0 {
		e.epsilon = math.Max(0, e.epsilon-e.decay)
	}
	return arm
}

// Epsilon is the current exploration rate.
func (e *EpsilonGreedy) Epsilon() float64 {
	return e.epsilon
}

func (e *EpsilonGreedy) String() string {
	if e.decay > 0 {
		return fmt.Sprintf("epsilon-greedy(%.3g, decay %.3g)", e.epsilon, e.decay)
	}
	return fmt.Sprintf("epsilon-greedy(%.3g)", e.epsilon)
}
