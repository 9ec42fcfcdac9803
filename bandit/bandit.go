package bandit

import (
	"fmt"
	"math"

	"bandit/rng"

	"gonum.org/v1/gonum/floats"
)

// Bandit is a k-armed Bernoulli bandit. Arm probabilities are fixed at
// construction and hidden from strategies.
type Bandit struct {
	probes    []float64
	bestIdx   int
	bestProbe float64
	rand      rng.Rand
}

// New draws arms success probabilities uniformly from [0, 1].
func New(arms int, r rng.Rand) (*Bandit, error) {
	if arms <= 0 {
		return nil, fmt.Errorf("arm count must be positive, got %d: %w", arms, ErrInvalidParameter)
	}
	if r == nil {
		return nil, fmt.Errorf("randomness source is required: %w", ErrInvalidParameter)
	}

	probes := make([]float64, arms)
	for i := range probes {
		probes[i] = r.Float64()
	}
	return build(probes, r), nil
}

// FromProbabilities builds a bandit with known arm probabilities.
func FromProbabilities(probes []float64, r rng.Rand) (*Bandit, error) {
	if len(probes) == 0 {
		return nil, fmt.Errorf("arm count must be positive, got 0: %w", ErrInvalidParameter)
	}
	if r == nil {
		return nil, fmt.Errorf("randomness source is required: %w", ErrInvalidParameter)
	}
	for i, p := range probes {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("arm %d probability %v outside [0, 1]: %w", i, p, ErrInvalidParameter)
		}
	}
	return build(append([]float64(nil), probes...), r), nil
}

func build(probes []float64, r rng.Rand) *Bandit {
	// MaxIdx keeps the first maximum, so ties go to the lowest index
	best := floats.MaxIdx(probes)
	return &Bandit{
		probes:    probes,
		bestIdx:   best,
		bestProbe: probes[best],
		rand:      r,
	}
}

// Sample pulls an arm and returns Hit with the arm's probability, else Miss.
// It consumes exactly one draw.
func (b *Bandit) Sample(arm int) (int, error) {
	if err := b.check(arm); err != nil {
		return 0, err
	}
	if b.rand.Float64() < b.probes[arm] {
		return Hit, nil
	}
	return Miss, nil
}

func (b *Bandit) Arms() int {
	return len(b.probes)
}

// Best returns the optimal arm and its success probability.
func (b *Bandit) Best() (arm int, probe float64) {
	return b.bestIdx, b.bestProbe
}

func (b *Bandit) Probability(arm int) (float64, error) {
	if err := b.check(arm); err != nil {
		return 0, err
	}
	return b.probes[arm], nil
}

// Probabilities returns a copy of the hidden arm probabilities.
func (b *Bandit) Probabilities() []float64 {
	return append([]float64(nil), b.probes...)
}

// Regret is the expected loss of pulling arm instead of the best arm. It is
// never negative.
func (b *Bandit) Regret(arm int) (float64, error) {
	if err := b.check(arm); err != nil {
		return 0, err
	}
	return b.bestProbe - b.probes[arm], nil
}

func (b *Bandit) String() string {
	return fmt.Sprintf("Bandit{arms: %d, best: %d (%.4f), probes: %.4f}", len(b.probes), b.bestIdx, b.bestProbe, b.probes)
}

func (b *Bandit) check(arm int) error {
	if arm < 0 || arm >= len(b.probes) {
		return fmt.Errorf("arm %d not in [0, %d): %w", arm, len(b.probes), ErrIndexOutOfRange)
	}
	return nil
}
