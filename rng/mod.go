// Package rng defines the randomness source consumed by bandits and strategies.
package rng

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness a simulation draws from. *rand.Rand satisfies it, and
// since it embeds rand.Source it can also drive gonum distributions.
type Rand interface {
	rand.Source
	Float64() float64
	Intn(n int) int
}

// New returns a seeded source. Equal seeds replay equal sequences.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TimeSeed derives a seed from the wall clock for runs that don't need to be
// reproducible.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Derive returns a source for the id-th consumer of a seeded run, so that
// adding a consumer does not shift the draws seen by the others. Distinct ids
// give distinct streams; id -1 yields the plain seed stream.
func Derive(seed uint64, id int) *rand.Rand {
	return New(seed ^ (uint64(id+1) * 0x9E3779B97F4A7C15))
}
