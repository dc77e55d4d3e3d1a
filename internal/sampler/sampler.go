// Package sampler provides seeded, reproducible pseudo-random draws.
//
// A Sampler owns its generator state exclusively. Two samplers built from the
// same seed and stream yield identical sequences; nothing here touches global
// randomness.
package sampler

import (
	"math"
	"math/rand/v2"
)

// Stream selects one of several independent sequences derived from a seed.
type Stream uint64

const (
	// Children is the stream child seeds are drawn from.
	Children Stream = 0x9e3779b97f4a7c15
	// Attributes is the stream a body samples its own attributes from.
	Attributes Stream = 0xd1b54a32d192ed03
)

type Sampler struct {
	rng *rand.Rand
}

// New returns a sampler on the Children stream of seed.
func New(seed uint64) *Sampler {
	return NewStream(seed, Children)
}

func NewStream(seed uint64, stream Stream) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, uint64(stream)))}
}

func (s *Sampler) Uint64() uint64 {
	return s.rng.Uint64()
}

// Float64 returns a value in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (s *Sampler) IntN(n int) int {
	return s.rng.IntN(n)
}

// Between returns an integer in [lo, hi].
func (s *Sampler) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Uniform returns a real in [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *Sampler) Normal(mean, stddev float64) float64 {
	return mean + stddev*s.rng.NormFloat64()
}

// PositiveNormal draws from a normal distribution and clamps the result to
// floor, which must be positive.
func (s *Sampler) PositiveNormal(mean, stddev, floor float64) float64 {
	return math.Max(floor, s.Normal(mean, stddev))
}

// LogUniform returns a real in [lo, hi) whose logarithm is uniform; lo must be
// positive.
func (s *Sampler) LogUniform(lo, hi float64) float64 {
	return math.Exp(s.Uniform(math.Log(lo), math.Log(hi)))
}

// Weighted pairs a value with its relative frequency in a table.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Choose draws one value from table with probability proportional to its
// weight. Entries with a non-positive weight are never chosen. It panics on a
// table without positive weights.
func Choose[T any](s *Sampler, table []Weighted[T]) T {
	total := 0
	for _, w := range table {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total == 0 {
		panic("sampler: weighted table has no positive weights")
	}

	roll := s.rng.IntN(total)
	current := 0
	for _, w := range table {
		if w.Weight <= 0 {
			continue
		}
		current += w.Weight
		if roll < current {
			return w.Value
		}
	}
	panic("unreachable")
}

// Pick returns a uniformly chosen element of values.
func Pick[T any](s *Sampler, values []T) T {
	return values[s.rng.IntN(len(values))]
}
