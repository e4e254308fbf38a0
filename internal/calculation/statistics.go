package calculation

import (
	"math"
	"sort"

	"github.com/rpgo/portfolio-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// DefaultSampleLines is how many representative paths a chart usually shows
const DefaultSampleLines = 10

// Column extracts the values of one year across every path.
// Non-finite values are dropped.
func Column(paths [][]float64, year int) []float64 {
	col := make([]float64, 0, len(paths))
	for _, row := range paths {
		if year < 0 || year >= len(row) {
			continue
		}
		v := row[year]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		col = append(col, v)
	}
	return col
}

// FinalColumn extracts the last year of every path
func FinalColumn(paths [][]float64) []float64 {
	if len(paths) == 0 {
		return nil
	}
	return Column(paths, len(paths[0])-1)
}

// Percentile returns the p-th percentile (0-100) of sorted data using linear
// interpolation between the closest ranks, rank = p/100*(n-1).
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if lowerIdx < 0 {
		return sorted[0]
	}
	if upperIdx >= n {
		return sorted[n-1]
	}
	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	lowerVal := sorted[lowerIdx]
	upperVal := sorted[upperIdx]
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// Summarize computes the mean, extremes and percentile ranges of values
func Summarize(metric string, values []float64) domain.Summary {
	summary := domain.Summary{Metric: metric, Count: len(values)}
	if len(values) == 0 {
		return summary
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	summary.Mean = decimal.NewFromFloat(stat.Mean(sorted, nil))
	summary.Min = decimal.NewFromFloat(sorted[0])
	summary.Max = decimal.NewFromFloat(sorted[len(sorted)-1])
	summary.Percentiles = calculatePercentileRanges(sorted)
	return summary
}

func calculatePercentileRanges(sorted []float64) domain.PercentileRanges {
	return domain.PercentileRanges{
		P10: decimal.NewFromFloat(Percentile(sorted, 10)),
		P25: decimal.NewFromFloat(Percentile(sorted, 25)),
		P50: decimal.NewFromFloat(Percentile(sorted, 50)),
		P75: decimal.NewFromFloat(Percentile(sorted, 75)),
		P90: decimal.NewFromFloat(Percentile(sorted, 90)),
	}
}

// YearBands computes the interquartile band of every year
func YearBands(paths [][]float64) []domain.YearBand {
	if len(paths) == 0 {
		return nil
	}
	bands := make([]domain.YearBand, 0, len(paths[0]))
	for year := range paths[0] {
		col := Column(paths, year)
		sort.Float64s(col)
		bands = append(bands, domain.YearBand{
			Year: year,
			P25:  Percentile(col, 25),
			P50:  Percentile(col, 50),
			P75:  Percentile(col, 75),
		})
	}
	return bands
}

// SamplePaths picks representative path indices for charting: every
// max(1, n/lines)-th path starting at 0.
func SamplePaths(n, lines int) []int {
	if n <= 0 {
		return nil
	}
	if lines <= 0 {
		lines = DefaultSampleLines
	}
	step := max(1, n/lines)
	idx := make([]int, 0, n/step+1)
	for i := 0; i < n; i += step {
		idx = append(idx, i)
	}
	return idx
}

// SummarizeResult builds the statistics shown alongside a simulation result
func SummarizeResult(result *domain.SimulationResult, sampleLines int) domain.ResultSummary {
	return domain.ResultSummary{
		EndingValue: Summarize("ending_value", FinalColumn(result.PortfolioPaths)),
		NPV:         Summarize("npv", FinalColumn(result.NPVPaths)),
		ValueBands:  YearBands(result.PortfolioPaths),
		NPVBands:    YearBands(result.NPVPaths),
		SampledRows: SamplePaths(len(result.PortfolioPaths), sampleLines),
		Warnings:    len(result.Warnings),
	}
}
