package calculation

// ContinuationProbability is the chance that next year's return keeps the
// direction of the previous year's portfolio move.
const ContinuationProbability = 0.7

// Regime is the direction of the portfolio over the previous year
type Regime int

const (
	// RegimeNone applies to year 1, which has no previous move.
	RegimeNone Regime = iota
	// RegimeUp means the value strictly increased.
	RegimeUp
	// RegimeDown means the value fell or stayed flat.
	RegimeDown
)

func (r Regime) String() string {
	switch r {
	case RegimeUp:
		return "up"
	case RegimeDown:
		return "down"
	default:
		return "none"
	}
}

// ClassifyRegime compares the two previous year-end values. Only a strict
// increase counts as up; ties fall into the down regime.
func ClassifyRegime(prev, prevPrev float64) Regime {
	if prev > prevPrev {
		return RegimeUp
	}
	return RegimeDown
}

// RegimeModel draws yearly returns that tend to persist the previous year's
// direction.
type RegimeModel struct {
	AverageReturn float64
	StdDev        float64
}

// NewRegimeModel creates a regime model for the given return parameters
func NewRegimeModel(averageReturn, stdDev float64) RegimeModel {
	return RegimeModel{AverageReturn: averageReturn, StdDev: stdDev}
}

// NextReturn draws the return of the given year (1-based).
//
// Year 1 consumes one normal draw. Every later year consumes one uniform
// draw for the continuation coin flip followed by one normal draw.
func (m RegimeModel) NextReturn(gen ReturnGenerator, year int, prev, prevPrev float64) float64 {
	if year <= 1 {
		return gen.NextNormal(m.AverageReturn, m.StdDev)
	}

	mean := m.AverageReturn
	if ClassifyRegime(prev, prevPrev) == RegimeDown {
		mean = -m.AverageReturn
	}
	if gen.NextUniform() >= ContinuationProbability {
		mean = -mean
	}
	return gen.NextNormal(mean, m.StdDev)
}

// DrawsPerPath is the number of generator calls one path of the given length consumes
func DrawsPerPath(years int) int {
	if years < 1 {
		return 0
	}
	return 2*years - 1
}
