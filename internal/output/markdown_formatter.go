package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// MarkdownFormatter renders the report as a markdown document with tables.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	cfg := report.Result.Config

	fmt.Fprintln(&buf, "# Portfolio Monte Carlo Simulation")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "## Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range report.Assumptions {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "## Ending Portfolio Value (Year %d)\n\n", cfg.Years)
	writeMarkdownSummary(&buf, report.Summary.EndingValue)
	fmt.Fprintf(&buf, "## Net Present Value (Year %d)\n\n", cfg.Years)
	writeMarkdownSummary(&buf, report.Summary.NPV)

	o := report.Outcome
	fmt.Fprintln(&buf, "## Outcome")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Measure | Value |")
	fmt.Fprintln(&buf, "|---|---:|")
	fmt.Fprintf(&buf, "| Total contributed | %s |\n", FormatCurrency(o.TotalContributed))
	fmt.Fprintf(&buf, "| Median ending value | %s |\n", FormatCurrency(o.MedianEnding))
	fmt.Fprintf(&buf, "| Median multiple | %sx |\n", o.MedianMultiple.StringFixed(2))
	fmt.Fprintf(&buf, "| Paths below contributed | %s |\n", FormatPercentage(o.ShortfallRate))
	fmt.Fprintf(&buf, "| NPV below initial | %s |\n", FormatPercentage(o.NPVBelowInitialRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## Year-by-Year Interquartile Range")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Year | Value P25 | Value Median | Value P75 |")
	fmt.Fprintln(&buf, "|---:|---:|---:|---:|")
	for _, b := range report.Summary.ValueBands {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n", b.Year,
			FormatFloatCurrency(b.P25), FormatFloatCurrency(b.P50), FormatFloatCurrency(b.P75))
	}

	if len(report.Result.Warnings) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "## Warnings")
		fmt.Fprintln(&buf)
		for _, w := range report.Result.Warnings {
			fmt.Fprintf(&buf, "- Simulation %d frozen at year %d: %s\n", w.Simulation, w.Year, w.Reason)
		}
	}
	return buf.Bytes(), nil
}

func writeMarkdownSummary(buf *bytes.Buffer, s domain.Summary) {
	fmt.Fprintln(buf, "| Statistic | Value |")
	fmt.Fprintln(buf, "|---|---:|")
	fmt.Fprintf(buf, "| Mean | %s |\n", FormatCurrency(s.Mean))
	fmt.Fprintf(buf, "| 10th percentile | %s |\n", FormatCurrency(s.Percentiles.P10))
	fmt.Fprintf(buf, "| 25th percentile | %s |\n", FormatCurrency(s.Percentiles.P25))
	fmt.Fprintf(buf, "| Median | %s |\n", FormatCurrency(s.Percentiles.P50))
	fmt.Fprintf(buf, "| 75th percentile | %s |\n", FormatCurrency(s.Percentiles.P75))
	fmt.Fprintf(buf, "| 90th percentile | %s |\n", FormatCurrency(s.Percentiles.P90))
	fmt.Fprintln(buf)
}
