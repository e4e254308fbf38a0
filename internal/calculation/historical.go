package calculation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rpgo/portfolio-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// ReturnObservation is one year's realized annual return
type ReturnObservation struct {
	Year   int             `json:"year"`
	Return decimal.Decimal `json:"return"`
}

// ReturnHistory is a series of historical annual returns
type ReturnHistory struct {
	Name         string              `json:"name"`
	Observations []ReturnObservation `json:"observations"`
	MinYear      int                 `json:"min_year"`
	MaxYear      int                 `json:"max_year"`
	MissingYears []int               `json:"missing_years"`
	Skipped      int                 `json:"skipped"`
}

// Calibration holds return parameters estimated from history
type Calibration struct {
	AverageReturn float64 `json:"average_return"`
	StdDev        float64 `json:"std_dev"`
	Count         int     `json:"count"`
	MinYear       int     `json:"min_year"`
	MaxYear       int     `json:"max_year"`
}

// LoadReturnHistory loads a CSV file with a header row and year,return rows
func LoadReturnHistory(filePath string) (*ReturnHistory, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	history, err := ReadReturnHistory(file, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filePath, err)
	}
	return history, nil
}

// ReadReturnHistory parses year,return rows. Returns may be fractions
// ("0.1125") or percentages ("11.25%"). Malformed rows are skipped.
func ReadReturnHistory(r io.Reader, name string) (*ReturnHistory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	history := &ReturnHistory{Name: name}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}

		obs, ok := parseObservation(record)
		if !ok {
			history.Skipped++
			continue
		}
		history.Observations = append(history.Observations, obs)
	}

	if len(history.Observations) == 0 {
		return nil, fmt.Errorf("no valid data points found")
	}

	sort.Slice(history.Observations, func(i, j int) bool {
		return history.Observations[i].Year < history.Observations[j].Year
	})
	history.MinYear = history.Observations[0].Year
	history.MaxYear = history.Observations[len(history.Observations)-1].Year
	history.MissingYears = missingYears(history.Observations)
	return history, nil
}

func parseObservation(record []string) (ReturnObservation, bool) {
	if len(record) < 2 {
		return ReturnObservation{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return ReturnObservation{}, false
	}

	raw := strings.TrimSpace(record[1])
	percent := strings.HasSuffix(raw, "%")
	value, err := decimal.NewFromString(strings.TrimSuffix(raw, "%"))
	if err != nil {
		return ReturnObservation{}, false
	}
	if percent {
		value = value.Div(decimal.NewFromInt(100))
	}
	return ReturnObservation{Year: year, Return: value}, true
}

func missingYears(obs []ReturnObservation) []int {
	var missing []int
	for i := 1; i < len(obs); i++ {
		for y := obs[i-1].Year + 1; y < obs[i].Year; y++ {
			missing = append(missing, y)
		}
	}
	return missing
}

// Calibrate estimates the mean and sample standard deviation of the returns
func (h *ReturnHistory) Calibrate() (Calibration, error) {
	if len(h.Observations) < 2 {
		return Calibration{}, fmt.Errorf("need at least 2 observations to calibrate, got %d", len(h.Observations))
	}

	values := make([]float64, len(h.Observations))
	for i, o := range h.Observations {
		values[i] = o.Return.InexactFloat64()
	}
	mean, stdDev := stat.MeanStdDev(values, nil)

	return Calibration{
		AverageReturn: mean,
		StdDev:        stdDev,
		Count:         len(values),
		MinYear:       h.MinYear,
		MaxYear:       h.MaxYear,
	}, nil
}

// Apply copies the calibrated return parameters into a configuration
func (c Calibration) Apply(config *domain.Configuration) {
	config.AverageReturn = c.AverageReturn
	config.StdDev = c.StdDev
}
