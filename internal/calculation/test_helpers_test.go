package calculation

import (
	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// fixedSequenceGenerator replays fixed z-scores and uniforms and records the
// means it was asked for. Exhausted sequences yield 0 and 0.
type fixedSequenceGenerator struct {
	normals  []float64
	uniforms []float64
	means    []float64
	calls    []string
}

func (g *fixedSequenceGenerator) NextNormal(mean, stdDev float64) float64 {
	g.means = append(g.means, mean)
	g.calls = append(g.calls, "normal")
	z := 0.0
	if len(g.normals) > 0 {
		z, g.normals = g.normals[0], g.normals[1:]
	}
	if stdDev == 0 {
		return mean
	}
	return mean + z*stdDev
}

func (g *fixedSequenceGenerator) NextUniform() float64 {
	g.calls = append(g.calls, "uniform")
	u := 0.0
	if len(g.uniforms) > 0 {
		u, g.uniforms = g.uniforms[0], g.uniforms[1:]
	}
	return u
}

// countingGenerator wraps a generator and counts draws.
type countingGenerator struct {
	inner ReturnGenerator
	draws int
}

func (g *countingGenerator) NextNormal(mean, stdDev float64) float64 {
	g.draws++
	return g.inner.NextNormal(mean, stdDev)
}

func (g *countingGenerator) NextUniform() float64 {
	g.draws++
	return g.inner.NextUniform()
}

func testConfig() domain.Configuration {
	return domain.Configuration{
		InitialInvestment:  10000,
		Years:              20,
		Simulations:        250,
		AverageReturn:      0.08,
		StdDev:             0.15,
		AnnualContribution: 5000,
		DiscountRate:       0.05,
		Seed:               42,
	}
}

// engineWith returns an engine whose sequential generator is gen.
func engineWith(gen ReturnGenerator) *Engine {
	e := NewEngine()
	e.NewGenerator = func(int64) ReturnGenerator { return gen }
	return e
}
