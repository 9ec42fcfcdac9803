package bandit

import "errors"

var (
	// ErrInvalidParameter reports a bad construction or run argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrIndexOutOfRange reports an arm index outside [0, arms). During a run
	// it means a strategy broke its contract.
	ErrIndexOutOfRange = errors.New("arm index out of range")
)

// Reward values of a Bernoulli arm
const (
	Miss = 0
	Hit  = 1
)
