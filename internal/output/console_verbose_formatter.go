package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	result := report.Result

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "PORTFOLIO MONTE CARLO SIMULATION")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range report.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeSummary(&buf, fmt.Sprintf("ENDING PORTFOLIO VALUE (YEAR %d)", result.Config.Years), report.Summary.EndingValue)
	writeSummary(&buf, fmt.Sprintf("NET PRESENT VALUE (YEAR %d)", result.Config.Years), report.Summary.NPV)

	o := report.Outcome
	fmt.Fprintln(&buf, "OUTCOME")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Total Contributed:      %s\n", FormatCurrency(o.TotalContributed))
	fmt.Fprintf(&buf, "  Median Ending Value:    %s (%sx contributed)\n", FormatCurrency(o.MedianEnding), o.MedianMultiple.StringFixed(2))
	fmt.Fprintf(&buf, "  Paths Below Contributed: %s\n", FormatPercentage(o.ShortfallRate))
	fmt.Fprintf(&buf, "  NPV Below Initial:      %s\n", FormatPercentage(o.NPVBelowInitialRate))
	fmt.Fprintln(&buf)

	writeBands(&buf, report.Summary.ValueBands, report.Summary.NPVBands)
	writeSampledPaths(&buf, result, report.Summary.SampledRows)
	writeWarnings(&buf, result.Warnings)
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, title string, s domain.Summary) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	if s.Count == 0 {
		fmt.Fprintln(buf, "  No finite values")
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "  Mean:            %s\n", FormatCurrency(s.Mean))
	fmt.Fprintf(buf, "  Minimum:         %s\n", FormatCurrency(s.Min))
	fmt.Fprintf(buf, "  10th Percentile: %s\n", FormatCurrency(s.Percentiles.P10))
	fmt.Fprintf(buf, "  25th Percentile: %s\n", FormatCurrency(s.Percentiles.P25))
	fmt.Fprintf(buf, "  Median:          %s\n", FormatCurrency(s.Percentiles.P50))
	fmt.Fprintf(buf, "  75th Percentile: %s\n", FormatCurrency(s.Percentiles.P75))
	fmt.Fprintf(buf, "  90th Percentile: %s\n", FormatCurrency(s.Percentiles.P90))
	fmt.Fprintf(buf, "  Maximum:         %s\n", FormatCurrency(s.Max))
	fmt.Fprintln(buf)
}

func writeBands(buf *bytes.Buffer, value, npv []domain.YearBand) {
	if len(value) == 0 {
		return
	}
	fmt.Fprintln(buf, "YEAR-BY-YEAR INTERQUARTILE RANGE")
	fmt.Fprintln(buf, strings.Repeat("-", 81))
	fmt.Fprintf(buf, "%-5s %16s %16s %16s %16s\n", "Year", "Value P25", "Value Median", "Value P75", "NPV Median")
	for i, b := range value {
		npvMedian := ""
		if i < len(npv) {
			npvMedian = FormatFloatCurrency(npv[i].P50)
		}
		fmt.Fprintf(buf, "%-5d %16s %16s %16s %16s\n", b.Year,
			FormatFloatCurrency(b.P25), FormatFloatCurrency(b.P50), FormatFloatCurrency(b.P75), npvMedian)
	}
	fmt.Fprintln(buf)
}

func writeSampledPaths(buf *bytes.Buffer, result *domain.SimulationResult, rows []int) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(buf, "SAMPLE PATHS")
	fmt.Fprintln(buf, strings.Repeat("-", 81))
	for _, s := range rows {
		value := result.PortfolioPaths[s]
		npv := result.NPVPaths[s]
		last := len(value) - 1
		fmt.Fprintf(buf, "  Simulation %-6d start %s -> end %s (NPV %s)\n", s,
			FormatFloatCurrency(value[0]), FormatFloatCurrency(value[last]), FormatFloatCurrency(npv[last]))
	}
	fmt.Fprintln(buf)
}

func writeWarnings(buf *bytes.Buffer, warnings []domain.PathWarning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(buf, "WARNINGS (%d)\n", len(warnings))
	fmt.Fprintln(buf, strings.Repeat("-", 81))
	for _, w := range warnings {
		fmt.Fprintf(buf, "  Simulation %d frozen at year %d: %s\n", w.Simulation, w.Year, w.Reason)
	}
	fmt.Fprintln(buf)
}
