package calculation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/portfolio-simulator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReturns = `year,return
2003,0.10
2001,10%
bad,0.5
2002,not-a-number
2005,0.30
2004,20%
`

func TestReadReturnHistory(t *testing.T) {
	history, err := ReadReturnHistory(strings.NewReader(sampleReturns), "sample")
	require.NoError(t, err)

	assert.Equal(t, "sample", history.Name)
	require.Len(t, history.Observations, 4)
	assert.Equal(t, 2001, history.MinYear)
	assert.Equal(t, 2005, history.MaxYear)
	assert.Equal(t, []int{2002}, history.MissingYears)
	assert.Equal(t, 2, history.Skipped)

	years := make([]int, 0, len(history.Observations))
	for _, o := range history.Observations {
		years = append(years, o.Year)
	}
	assert.Equal(t, []int{2001, 2003, 2004, 2005}, years)
	assert.Equal(t, "0.1", history.Observations[0].Return.String())
	assert.Equal(t, "0.2", history.Observations[2].Return.String())
}

func TestReadReturnHistory_Errors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"empty", "", "failed to read header"},
		{"single column", "year\n2001\n", "expected at least 2 columns"},
		{"no valid rows", "year,return\nx,y\n", "no valid data points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadReturnHistory(strings.NewReader(tt.input), "x")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCalibrate(t *testing.T) {
	history, err := ReadReturnHistory(strings.NewReader("year,return\n2000,0.1\n2001,0.2\n2002,0.3\n"), "x")
	require.NoError(t, err)

	cal, err := history.Calibrate()
	require.NoError(t, err)
	assert.InDelta(t, 0.2, cal.AverageReturn, 1e-12)
	assert.InDelta(t, 0.1, cal.StdDev, 1e-12) // sample standard deviation
	assert.Equal(t, 3, cal.Count)
	assert.Equal(t, 2000, cal.MinYear)
	assert.Equal(t, 2002, cal.MaxYear)

	cfg := domain.Configuration{AverageReturn: 1, StdDev: 1}
	cal.Apply(&cfg)
	assert.Equal(t, cal.AverageReturn, cfg.AverageReturn)
	assert.Equal(t, cal.StdDev, cfg.StdDev)
}

func TestCalibrate_TooFewObservations(t *testing.T) {
	history, err := ReadReturnHistory(strings.NewReader("year,return\n2000,0.1\n"), "x")
	require.NoError(t, err)

	_, err = history.Calibrate()
	assert.Error(t, err)
}

func TestLoadReturnHistory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "returns.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleReturns), 0644))

	history, err := LoadReturnHistory(path)
	require.NoError(t, err)
	assert.Equal(t, path, history.Name)
	assert.Len(t, history.Observations, 4)

	_, err = LoadReturnHistory(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
