// Package random provides the seeded pseudo-random stream used for name
// generation and a crypto-backed helper for drawing fresh seeds.
package random

import "math/rand"

// Source draws integers in [0, maxExclusive).
type Source interface {
	Next(maxExclusive int) int
}

// Stream is a deterministic pseudo-random integer stream keyed by a seed.
// Two streams built from the same seed and driven by the same sequence of
// Next calls return the same values.
type Stream struct {
	seed int64
	rng  *rand.Rand
}

var _ Source = (*Stream)(nil)

func New(seed int64) *Stream {
	return &Stream{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly distributed integer in [0, maxExclusive).
// A non-positive bound returns 0 and leaves the stream untouched.
func (s *Stream) Next(maxExclusive int) int {
	if maxExclusive <= 0 {
		return 0
	}
	return s.rng.Intn(maxExclusive)
}

func (s *Stream) Seed() int64 {
	return s.seed
}
