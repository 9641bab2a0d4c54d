// Package random provides the production randomness source.
package random

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source implements ports.Rand over a seeded PCG generator. A fixed
// seed replays the same life; distinct seeds give independent streams.
type Source struct {
	rng *rand.Rand
}

// New returns a source seeded from the given value.
func New(seed uint64) *Source {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &Source{
		rng: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

// NewUnseeded returns a source with a fresh random seed per game.
func NewUnseeded() *Source {
	return New(rand.Uint64())
}

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a uniform draw in [0, n).
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

func seedWord(seed uint64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
