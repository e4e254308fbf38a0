package calculation

import (
	"context"
	"math"
	"testing"

	"github.com/rpgo/portfolio-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{25, 1.75},
		{50, 2.5},
		{75, 3.25},
		{100, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Percentile(data, tt.p), 1e-12, "p%v", tt.p)
	}

	assert.Equal(t, 0.0, Percentile(nil, 50))
	assert.Equal(t, 7.0, Percentile([]float64{7}, 25))
}

func TestSummarize(t *testing.T) {
	s := Summarize("ending_value", []float64{5, 1, 4, 2, 3})

	assert.Equal(t, "ending_value", s.Metric)
	assert.Equal(t, 5, s.Count)
	assert.True(t, s.Mean.Equal(decimal.NewFromInt(3)), "mean %s", s.Mean)
	assert.True(t, s.Min.Equal(decimal.NewFromInt(1)))
	assert.True(t, s.Max.Equal(decimal.NewFromInt(5)))
	assert.True(t, s.Percentiles.P25.Equal(decimal.NewFromInt(2)))
	assert.True(t, s.Percentiles.P50.Equal(decimal.NewFromInt(3)))
	assert.True(t, s.Percentiles.P75.Equal(decimal.NewFromInt(4)))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize("npv", nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Mean.IsZero())
}

func TestColumn_DropsNonFinite(t *testing.T) {
	paths := [][]float64{{1, 2}, {1, math.Inf(1)}, {1, math.NaN()}, {1, 5}}
	assert.Equal(t, []float64{2, 5}, FinalColumn(paths))
	assert.Equal(t, []float64{1, 1, 1, 1}, Column(paths, 0))
	assert.Empty(t, Column(paths, 9))
	assert.Nil(t, FinalColumn(nil))
}

func TestSummarizeResult_PercentileOrdering(t *testing.T) {
	for _, seed := range []int64{1, 42, 2024} {
		cfg := testConfig()
		cfg.Seed = seed

		result, err := NewEngine().Run(context.Background(), cfg)
		require.NoError(t, err)

		summary := SummarizeResult(result, 10)
		for _, s := range []domain.Summary{summary.EndingValue, summary.NPV} {
			p := s.Percentiles
			assert.True(t, p.P10.LessThanOrEqual(p.P25), "%s p10 <= p25", s.Metric)
			assert.True(t, p.P25.LessThanOrEqual(p.P75), "%s p25 <= p75", s.Metric)
			assert.True(t, p.P75.LessThanOrEqual(p.P90), "%s p75 <= p90", s.Metric)
			assert.Equal(t, cfg.Simulations, s.Count)
		}

		require.Len(t, summary.ValueBands, cfg.Years+1)
		require.Len(t, summary.NPVBands, cfg.Years+1)
		assert.Equal(t, cfg.InitialInvestment, summary.ValueBands[0].P25)
		assert.Equal(t, cfg.InitialInvestment, summary.ValueBands[0].P75)
		for _, b := range summary.ValueBands {
			assert.LessOrEqual(t, b.P25, b.P50)
			assert.LessOrEqual(t, b.P50, b.P75)
		}
		assert.Len(t, summary.SampledRows, 10)
		assert.Zero(t, summary.Warnings)
	}
}

func TestSamplePaths(t *testing.T) {
	assert.Equal(t, []int{0, 100, 200, 300, 400, 500, 600, 700, 800, 900}, SamplePaths(1000, 10))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, SamplePaths(5, 10))
	assert.Equal(t, []int{0, 2, 4, 6}, SamplePaths(7, 3))
	assert.Len(t, SamplePaths(1000, 0), DefaultSampleLines)
	assert.Nil(t, SamplePaths(0, 10))
}
