package output

import (
	"encoding/json"

	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// JSONFormatter serializes the report, including every path, as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	Config         domain.Configuration `json:"config"`
	Assumptions    []string             `json:"assumptions"`
	Summary        domain.ResultSummary `json:"summary"`
	Outcome        Outcome              `json:"outcome"`
	Warnings       []domain.PathWarning `json:"warnings"`
	PortfolioPaths [][]float64          `json:"portfolio_paths"`
	NPVPaths       [][]float64          `json:"npv_paths"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	warnings := report.Result.Warnings
	if warnings == nil {
		warnings = []domain.PathWarning{}
	}
	return json.MarshalIndent(jsonReport{
		Config:         report.Result.Config,
		Assumptions:    report.Assumptions,
		Summary:        report.Summary,
		Outcome:        report.Outcome,
		Warnings:       warnings,
		PortfolioPaths: report.Result.PortfolioPaths,
		NPVPaths:       report.Result.NPVPaths,
	}, "", "  ")
}
