package output

import (
	"github.com/rpgo/portfolio-simulator/internal/calculation"
	"github.com/rpgo/portfolio-simulator/internal/domain"
	money "github.com/rpgo/portfolio-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Outcome compares simulated ending values against the money put in.
type Outcome struct {
	TotalContributed decimal.Decimal `json:"total_contributed"`
	MedianEnding     decimal.Decimal `json:"median_ending"`
	MedianMultiple   decimal.Decimal `json:"median_multiple"`
	// ShortfallRate is the percentage of paths ending below TotalContributed.
	ShortfallRate decimal.Decimal `json:"shortfall_rate"`
	// NPVBelowInitialRate is the percentage of paths whose final NPV is below the initial investment.
	NPVBelowInitialRate decimal.Decimal `json:"npv_below_initial_rate"`
}

// AnalyzeOutcome derives the headline outcome figures of a result.
func AnalyzeOutcome(result *domain.SimulationResult) Outcome {
	cfg := result.Config
	initial := money.NewMoney(cfg.InitialInvestment)
	contributed := initial.Add(money.NewMoney(cfg.AnnualContribution).Times(cfg.Years))

	out := Outcome{TotalContributed: contributed.Decimal}
	ending := calculation.FinalColumn(result.PortfolioPaths)
	if len(ending) == 0 {
		return out
	}

	summary := calculation.Summarize("ending_value", ending)
	out.MedianEnding = summary.Percentiles.P50
	out.MedianMultiple = money.NewMoneyFromDecimal(out.MedianEnding).Ratio(contributed).Round(4)

	short := 0
	for _, v := range ending {
		if money.NewMoney(v).LessThan(contributed) {
			short++
		}
	}
	out.ShortfallRate = rate(short, len(ending))

	npv := calculation.FinalColumn(result.NPVPaths)
	below := 0
	for _, v := range npv {
		if money.NewMoney(v).LessThan(initial) {
			below++
		}
	}
	out.NPVBelowInitialRate = rate(below, len(npv))
	return out
}

func rate(n, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n)).Mul(decimalHundred).Div(decimal.NewFromInt(int64(total))).Round(2)
}
