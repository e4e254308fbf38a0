package output

import (
	"fmt"

	"github.com/rpgo/portfolio-simulator/internal/calculation"
	"github.com/rpgo/portfolio-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateAssumptions lists the modeling assumptions behind a run
func GenerateAssumptions(cfg domain.Configuration) []string {
	mode := "sequential, single seeded stream"
	if cfg.Parallel() {
		mode = fmt.Sprintf("parallel on %d workers, per-path streams", cfg.Workers)
	}
	return []string{
		fmt.Sprintf("Initial investment: %s", FormatFloatCurrency(cfg.InitialInvestment)),
		fmt.Sprintf("Annual contribution: %s, added at the start of each year", FormatFloatCurrency(cfg.AnnualContribution)),
		fmt.Sprintf("Annual return: normal with mean %s and standard deviation %s", FormatRate(cfg.AverageReturn), FormatRate(cfg.StdDev)),
		fmt.Sprintf("Regime persistence: %s chance the prior year's direction carries into the next", FormatRate(calculation.ContinuationProbability)),
		fmt.Sprintf("Discount rate: %s annually", FormatRate(cfg.DiscountRate)),
		fmt.Sprintf("Horizon: %d years, %d simulations, seed %d (%s)", cfg.Years, cfg.Simulations, cfg.Seed, mode),
	}
}

var decimalHundred = decimal.NewFromInt(100)
