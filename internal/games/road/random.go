package road

import "math/rand"

// RandomSource picks enemy lanes. Tests substitute deterministic sources.
type RandomSource interface {
	// NextColumn returns a column in [min, max].
	NextColumn(min, max int) int
}

// seededSource draws uniformly from a seeded math/rand generator.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a uniform RandomSource; equal seeds give equal sequences.
func NewSeededSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) NextColumn(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Cycle yields 0, 1, ..., n-1, 0, 1, ... for the enemy row.
type Cycle struct {
	n   int
	cur int
}

// NewCycle starts a cycle of period n at 0.
func NewCycle(n int) Cycle {
	return Cycle{n: n}
}

// Next advances and returns the new value.
func (c *Cycle) Next() int {
	c.cur = (c.cur + 1) % c.n
	return c.cur
}

// Current returns the value without advancing.
func (c Cycle) Current() int {
	return c.cur
}
