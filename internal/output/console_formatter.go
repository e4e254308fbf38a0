package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	cfg := report.Result.Config
	fmt.Fprintln(&buf, "PORTFOLIO SIMULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Simulations=%d Years=%d Seed=%d\n", cfg.Simulations, cfg.Years, cfg.Seed)
	fmt.Fprintln(&buf)

	ev := report.Summary.EndingValue
	fmt.Fprintf(&buf, "Ending Value: Mean=%s P25=%s P75=%s\n",
		FormatCurrency(ev.Mean), FormatCurrency(ev.Percentiles.P25), FormatCurrency(ev.Percentiles.P75))
	npv := report.Summary.NPV
	fmt.Fprintf(&buf, "NPV:          Mean=%s P25=%s P75=%s\n",
		FormatCurrency(npv.Mean), FormatCurrency(npv.Percentiles.P25), FormatCurrency(npv.Percentiles.P75))

	o := report.Outcome
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Contributed=%s MedianMultiple=%sx Shortfall=%s\n",
		FormatCurrency(o.TotalContributed), o.MedianMultiple.StringFixed(2), FormatPercentage(o.ShortfallRate))
	if n := len(report.Result.Warnings); n > 0 {
		fmt.Fprintf(&buf, "Warnings: %d paths stopped producing finite values\n", n)
	}
	return buf.Bytes(), nil
}
