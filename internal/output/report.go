package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/portfolio-simulator/internal/calculation"
	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Report bundles a simulation result with the statistics every formatter shares.
type Report struct {
	Result      *domain.SimulationResult
	Summary     domain.ResultSummary
	Outcome     Outcome
	Assumptions []string
}

// NewReport summarizes a result. sampleLines bounds the sampled paths; zero
// uses calculation.DefaultSampleLines.
func NewReport(result *domain.SimulationResult, sampleLines int) *Report {
	summary := calculation.SummarizeResult(result, sampleLines)
	return &Report{
		Result:      result,
		Summary:     summary,
		Outcome:     AnalyzeOutcome(result),
		Assumptions: GenerateAssumptions(result.Config),
	}
}

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	if report == nil || report.Result == nil {
		return errors.New("no simulation result to report")
	}
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, report)
}
