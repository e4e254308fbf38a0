package output

import (
	"bytes"
	"encoding/csv"
)

// CSVPathExporter writes every simulated path, one row per simulation and year.
type CSVPathExporter struct{}

func (c CSVPathExporter) Name() string { return "csv" }

func (c CSVPathExporter) Format(report *Report) ([]byte, error) {
	result := report.Result
	frozenFrom := make(map[int]int, len(result.Warnings))
	for _, w := range result.Warnings {
		frozenFrom[w.Simulation] = w.Year
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Simulation", "Year", "PortfolioValue", "NPV", "Frozen"}); err != nil {
		return nil, err
	}
	for s, values := range result.PortfolioPaths {
		npv := result.NPVPaths[s]
		from, frozen := frozenFrom[s]
		for year, v := range values {
			row := []string{
				intToString(s),
				intToString(year),
				floatToString(v),
				floatToString(npv[year]),
				boolToString(frozen && year >= from),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
