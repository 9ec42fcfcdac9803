package strategy

import (
	"fmt"

	"bandit/bandit"
	"bandit/rng"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Thompson samples each arm's Beta(1+hits, 1+misses) posterior and plays the
// arm with the highest sample.
type Thompson struct {
	belief
	alphas   []float64
	betas    []float64
	samples  []float64
	rand     rng.Rand
	observer Observer
}

func NewThompson(arms int, r rng.Rand, opts ...Option) (*Thompson, error) {
	if err := validateArms(arms); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("randomness source is required: %w", bandit.ErrInvalidParameter)
	}

	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	t := &Thompson{
		belief:   newBelief(arms, o.prior),
		alphas:   make([]float64, arms),
		betas:    make([]float64, arms),
		samples:  make([]float64, arms),
		rand:     r,
		observer: o.observer,
	}
	for i := 0; i < arms; i++ { // Uniform prior
		t.alphas[i] = 1
		t.betas[i] = 1
	}
	return t, nil
}

func (t *Thompson) SelectArm() int {
	for i := range t.samples {
		posterior := distuv.Beta{Alpha: t.alphas[i], Beta: t.betas[i], Src: t.rand}
		t.samples[i] = posterior.Rand()
	}

	arm := floats.MaxIdx(t.samples)
	if arm == floats.MaxIdx(t.estimates) {
		t.observer.Exploited(arm)
	} else {
		t.observer.Explored(arm)
	}
	return arm
}

func (t *Thompson) Update(arm, reward int) error {
	if err := t.belief.Update(arm, reward); err != nil {
		return err
	}
	if reward == bandit.Hit {
		t.alphas[arm]++
	} else {
		t.betas[arm]++
	}
	return nil
}

// Posterior returns the Beta parameters of arm.
func (t *Thompson) Posterior(arm int) (alpha, beta float64, err error) {
	if arm < 0 || arm >= len(t.alphas) {
		return 0, 0, fmt.Errorf("arm %d not in [0, %d): %w", arm, len(t.alphas), bandit.ErrIndexOutOfRange)
	}
	return t.alphas[arm], t.betas[arm], nil
}

func (t *Thompson) String() string {
	return "thompson"
}
