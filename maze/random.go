package maze

import (
	"math/rand"
	"time"
)

// RandomSource yields uniform values in [0,1)
// *rand.Rand satisfies it; tests inject scripted sequences
type RandomSource interface {
	Float64() float64
}

// NewRandSource returns a PRNG for production use
// Seed 0 picks a time-based seed
func NewRandSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
