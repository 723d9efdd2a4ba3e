package picker

import (
	"math/rand/v2"

	"github.com/pion/randutil"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewRandom returns an auto-seeded, goroutine-safe RNG.
func NewRandom() RNG {
	return randutil.NewMathRandomGenerator()
}

// seededRNG is a reproducible PCG source. Not safe for concurrent use.
type seededRNG struct {
	r *rand.Rand
}

// NewSeeded returns an RNG whose draws are fully determined by seed.
func NewSeeded(seed uint64) RNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRNG) Intn(n int) int { return s.r.IntN(n) }

// New picks NewSeeded when a seed is set and NewRandom otherwise.
// Zero is a valid seed.
func New(seed *uint64) RNG {
	if seed != nil {
		return NewSeeded(*seed)
	}
	return NewRandom()
}
