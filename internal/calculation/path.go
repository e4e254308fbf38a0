package calculation

import (
	"math"

	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// pathSimulator accumulates one portfolio path and its running NPV.
type pathSimulator struct {
	model        RegimeModel
	initial      float64
	contribution float64
	discountBase float64
	years        int
}

func newPathSimulator(config domain.Configuration) pathSimulator {
	return pathSimulator{
		model:        NewRegimeModel(config.AverageReturn, config.StdDev),
		initial:      config.InitialInvestment,
		contribution: config.AnnualContribution,
		discountBase: 1 + config.DiscountRate,
		years:        config.Years,
	}
}

// run fills value and npv (both of length years+1) for simulation sim.
//
// Once a year produces a non-finite value the path is frozen: that year and
// every later year repeat the last finite value and NPV (npv[1] stays the
// initial investment), and a warning is returned. Draws are still consumed
// for the frozen years so the generator ends where a healthy path would.
func (ps pathSimulator) run(gen ReturnGenerator, sim int, value, npv []float64) *domain.PathWarning {
	value[0] = ps.initial
	npv[0] = 0

	var warning *domain.PathWarning
	for year := 1; year <= ps.years; year++ {
		prevPrev := 0.0
		if year > 1 {
			prevPrev = value[year-2]
		}
		r := ps.model.NextReturn(gen, year, value[year-1], prevPrev)

		if warning != nil {
			ps.hold(year, value, npv)
			continue
		}

		v := (value[year-1] + ps.contribution) * (1 + r)
		n := ps.initial
		if year > 1 {
			discount := math.Pow(ps.discountBase, float64(year))
			n = npv[year-1] + ps.contribution/discount + (v-value[year-1]-ps.contribution)/discount
		}

		if reason := nonFinite(v, n); reason != "" {
			warning = &domain.PathWarning{Simulation: sim, Year: year, Reason: reason}
			ps.hold(year, value, npv)
			continue
		}
		value[year] = v
		npv[year] = n
	}
	return warning
}

// hold repeats the previous year of a frozen path.
func (ps pathSimulator) hold(year int, value, npv []float64) {
	value[year] = value[year-1]
	if year == 1 {
		npv[year] = ps.initial
		return
	}
	npv[year] = npv[year-1]
}

func nonFinite(value, npv float64) string {
	switch {
	case math.IsNaN(value):
		return "portfolio value is NaN"
	case math.IsInf(value, 0):
		return "portfolio value overflowed"
	case math.IsNaN(npv):
		return "npv is NaN"
	case math.IsInf(npv, 0):
		return "npv overflowed"
	}
	return ""
}
