// meta/meta.go
package meta

// ARMS defines the default number of bandit arms.
const ARMS = 10

// STEPS defines the default number of steps per run.
const STEPS = 1000

// EPSILON defines the default exploration rate of epsilon-greedy.
const EPSILON = 0.1

// EXPLORATION_CONSTANT defines the squared exploration constant of UCB.
const EXPLORATION_CONSTANT = 2.0

// PRIOR defines the optimistic initial estimate of every arm.
const PRIOR = 1.0
