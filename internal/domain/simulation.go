package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration holds the scalar inputs of a portfolio simulation run
type Configuration struct {
	InitialInvestment  float64 `yaml:"initial_investment" json:"initial_investment"`
	Years              int     `yaml:"years" json:"years"`
	Simulations        int     `yaml:"simulations" json:"simulations"`
	AverageReturn      float64 `yaml:"average_return" json:"average_return"`
	StdDev             float64 `yaml:"std_dev" json:"std_dev"`
	AnnualContribution float64 `yaml:"annual_contribution" json:"annual_contribution"`
	DiscountRate       float64 `yaml:"discount_rate" json:"discount_rate"`
	Seed               int64   `yaml:"seed" json:"seed"`

	// Engine tuning. Neither field changes the values produced for a given mode.
	ChunkSize int `yaml:"chunk_size,omitempty" json:"chunk_size,omitempty"`
	Workers   int `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// Columns returns the width of a path row (years plus the initial state)
func (c Configuration) Columns() int {
	return c.Years + 1
}

// Parallel reports whether paths run on independently seeded per-path streams
func (c Configuration) Parallel() bool {
	return c.Workers > 1
}

// PathWarning flags a path whose values stopped being finite
type PathWarning struct {
	Simulation int    `json:"simulation"`
	Year       int    `json:"year"`
	Reason     string `json:"reason"`
}

// PathResult is a single simulated path
type PathResult struct {
	Simulation int          `json:"simulation"`
	Portfolio  []float64    `json:"portfolio"`
	NPV        []float64    `json:"npv"`
	Warning    *PathWarning `json:"warning,omitempty"`
}

// SimulationResult holds every path of a run.
//
// PortfolioPaths[s][0] is always the initial investment, NPVPaths[s][0] is
// always zero and NPVPaths[s][1] is always the initial investment.
type SimulationResult struct {
	Config         Configuration `json:"config"`
	PortfolioPaths [][]float64   `json:"portfolio_paths"`
	NPVPaths       [][]float64   `json:"npv_paths"`
	Warnings       []PathWarning `json:"warnings,omitempty"`
}

// PercentileRanges represents percentile ranges of a result column
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// Summary describes the distribution of the final-year column of one matrix
type Summary struct {
	Metric      string           `json:"metric"`
	Count       int              `json:"count"`
	Mean        decimal.Decimal  `json:"mean"`
	Min         decimal.Decimal  `json:"min"`
	Max         decimal.Decimal  `json:"max"`
	Percentiles PercentileRanges `json:"percentiles"`
}

// YearBand is the interquartile band of one year across all paths
type YearBand struct {
	Year int     `json:"year"`
	P25  float64 `json:"p25"`
	P50  float64 `json:"p50"`
	P75  float64 `json:"p75"`
}

// ResultSummary groups the statistics a presentation layer typically shows
type ResultSummary struct {
	EndingValue Summary    `json:"ending_value"`
	NPV         Summary    `json:"npv"`
	ValueBands  []YearBand `json:"value_bands"`
	NPVBands    []YearBand `json:"npv_bands"`
	SampledRows []int      `json:"sampled_rows"`
	Warnings    int        `json:"warnings"`
}
