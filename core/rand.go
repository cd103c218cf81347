package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness a simulation draws from
// *rand.Rand satisfies it; tests pass a seeded one for reproducible runs
type Rand interface {
	Intn(n int) int
	Float64() float64
	Read(p []byte) (n int, err error)
}

// NewRand returns a generator for seed, seed 0 picks a time-based seed
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
