// Package rng provides the seeded random source used by the simulation.
package rng

import (
	"math/rand"
	"time"
)

// Source wraps a seeded math/rand generator so a whole game can be replayed
// from one seed.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// New creates a source. A zero seed picks one from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Range returns a value uniformly distributed over [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.rng.Float64() < p
}
