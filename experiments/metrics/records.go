package metrics

import "bandit/solver"

type StrategyConfig struct {
	ID      int
	Kind    string
	Epsilon float64 // epsilon-greedy only
	Decay   float64 // epsilon-greedy only
	C2      float64 // ucb only
}

type RunRecord struct {
	Strategy     int // StrategyConfig.ID
	Name         string
	BestArmPulls int
	solver.RunMetrics
}

type StepRecord struct {
	Strategy int // StrategyConfig.ID
	Step     int
	Arm      int
	Regret   float64
}
