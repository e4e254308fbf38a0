package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per metric).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv-summary" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Metric", "Count", "Mean", "Min", "P10", "P25", "P50", "P75", "P90", "Max"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range []domain.Summary{report.Summary.EndingValue, report.Summary.NPV} {
		row := []string{
			s.Metric,
			intToString(s.Count),
			s.Mean.StringFixed(2),
			s.Min.StringFixed(2),
			s.Percentiles.P10.StringFixed(2),
			s.Percentiles.P25.StringFixed(2),
			s.Percentiles.P50.StringFixed(2),
			s.Percentiles.P75.StringFixed(2),
			s.Percentiles.P90.StringFixed(2),
			s.Max.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
