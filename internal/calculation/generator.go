package calculation

import (
	"math/rand"
)

// ReturnGenerator produces the random draws consumed by the return model.
// Implementations are owned by a single path or a single sequential run.
type ReturnGenerator interface {
	// NextNormal draws from N(mean, stdDev). stdDev == 0 yields mean exactly.
	NextNormal(mean, stdDev float64) float64
	// NextUniform draws from [0, 1).
	NextUniform() float64
}

// SeededGenerator is a ReturnGenerator backed by a seeded math/rand source.
// The same seed and the same sequence of calls always produce the same values.
//
// Thread-safety: NOT thread-safe.
type SeededGenerator struct {
	seed int64
	rng  *rand.Rand
}

// NewSeededGenerator creates a generator for the given seed
func NewSeededGenerator(seed int64) *SeededGenerator {
	return &SeededGenerator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NextNormal draws one standard normal and scales it. A draw is consumed even
// when stdDev is zero so the stream position never depends on volatility.
func (g *SeededGenerator) NextNormal(mean, stdDev float64) float64 {
	z := g.rng.NormFloat64()
	if stdDev == 0 {
		return mean
	}
	return mean + z*stdDev
}

// NextUniform draws from [0, 1)
func (g *SeededGenerator) NextUniform() float64 {
	return g.rng.Float64()
}

// Seed returns the seed the generator was created with
func (g *SeededGenerator) Seed() int64 {
	return g.seed
}
