package strategy

import (
	"fmt"
	"math"
)

// UCB plays every arm once, then the arm maximising the UCB1 bound
// estimate + sqrt(c^2*ln(N)/n). It draws no randomness.
type UCB struct {
	belief
	c2       float64
	observer Observer
}

func NewUCB(arms int, opts ...Option) (*UCB, error) {
	if err := validateArms(arms); err != nil {
		return nil, err
	}

	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	return &UCB{
		belief:   newBelief(arms, o.prior),
		c2:       o.c2,
		observer: o.observer,
	}, nil
}

func (u *UCB) SelectArm() int {
	// Prioritize unexplored arms
	for i, n := range u.counts {
		if n == 0 {
			u.observer.Explored(i)
			return i
		}
	}

	policy := newUCT(u.c2, float64(u.pulls()))
	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, n := range u.counts {
		if score := policy.evaluate(u.estimates[i], float64(n)); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}

	u.observer.Exploited(maxIndex)
	return maxIndex
}

func (u *UCB) String() string {
	return fmt.Sprintf("ucb(c2=%.3g)", u.c2)
}

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(mean float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return mean + math.Sqrt(u.numerator/n)
}
