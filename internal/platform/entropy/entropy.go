// Package entropy provides the injectable random source for the simulation.
// Every probability threshold in the engine is expressed against a uniform
// [0,1) generator so tests can substitute a deterministic source.
package entropy

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the uniform randomness collaborator used by the engine.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n). Panics if n <= 0.
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a seeded Source. A zero seed uses the current time.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
