package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rpgo/portfolio-simulator/internal/calculation"
	"github.com/rpgo/portfolio-simulator/internal/config"
	"github.com/rpgo/portfolio-simulator/internal/domain"
	"github.com/rpgo/portfolio-simulator/internal/output"
)

type runOptions struct {
	configFile  string
	format      string
	sampleLines int

	initial      float64
	years        int
	simulations  int
	avgReturn    float64
	stdDev       float64
	contribution float64
	discountRate float64
	seed         int64
	workers      int
	chunkSize    int
}

// newRunCmd executes the simulation using a config file and/or CLI flags
func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the portfolio simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	defaults := config.DefaultConfiguration()
	f := runCmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "YAML configuration file; explicitly set flags override its values")
	f.StringVar(&opts.format, "format", "console", "Output format (console, console-lite, json, csv, csv-summary, markdown)")
	f.IntVar(&opts.sampleLines, "sample-paths", calculation.DefaultSampleLines, "Number of representative paths in console output")

	f.Float64Var(&opts.initial, "initial", defaults.InitialInvestment, "Initial investment")
	f.IntVar(&opts.years, "years", defaults.Years, "Number of years to simulate")
	f.IntVar(&opts.simulations, "simulations", defaults.Simulations, "Number of simulated paths")
	f.Float64Var(&opts.avgReturn, "average-return", defaults.AverageReturn, "Mean annual return (0.08 = 8%)")
	f.Float64Var(&opts.stdDev, "std-dev", defaults.StdDev, "Standard deviation of annual returns")
	f.Float64Var(&opts.contribution, "contribution", defaults.AnnualContribution, "Contribution added at the start of each year")
	f.Float64Var(&opts.discountRate, "discount-rate", defaults.DiscountRate, "Annual discount rate for NPV")
	f.Int64Var(&opts.seed, "seed", defaults.Seed, "Seed for return generation")
	f.IntVar(&opts.workers, "workers", defaults.Workers, "Parallel workers; 0 or 1 runs sequentially on one stream")
	f.IntVar(&opts.chunkSize, "chunk-size", defaults.ChunkSize, "Simulations per batch")
	return runCmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	formatter := output.GetFormatterByName(o.format)
	if formatter == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, o.format)
	}

	cfg, err := o.configuration(cmd.Flags())
	if err != nil {
		return err
	}

	logrus.Infof("Starting simulation: initial=%.2f years=%d simulations=%d return=%.4f stddev=%.4f contribution=%.2f discount=%.4f seed=%d",
		cfg.InitialInvestment, cfg.Years, cfg.Simulations, cfg.AverageReturn, cfg.StdDev, cfg.AnnualContribution, cfg.DiscountRate, cfg.Seed)

	engine := calculation.NewEngine()
	engine.SetLogger(logrus.StandardLogger())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := engine.Run(ctx, *cfg)
	if err != nil {
		return err
	}

	report := output.NewReport(result, o.sampleLines)
	if err := output.WriteFormatted(cmd.OutOrStdout(), formatter, report); err != nil {
		return err
	}
	logrus.Info("Simulation complete.")
	return nil
}

// configuration loads the config file (or defaults) and applies every flag
// the user set explicitly.
func (o *runOptions) configuration(flags *pflag.FlagSet) (*domain.Configuration, error) {
	cfg := config.DefaultConfiguration()
	if o.configFile != "" {
		// Validation happens in the engine, after flag overrides are merged.
		loaded, err := config.NewInputParser().DecodeFile(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		logrus.Debugf("loaded configuration from %s", o.configFile)
	}

	overrides := map[string]func(){
		"initial":        func() { cfg.InitialInvestment = o.initial },
		"years":          func() { cfg.Years = o.years },
		"simulations":    func() { cfg.Simulations = o.simulations },
		"average-return": func() { cfg.AverageReturn = o.avgReturn },
		"std-dev":        func() { cfg.StdDev = o.stdDev },
		"contribution":   func() { cfg.AnnualContribution = o.contribution },
		"discount-rate":  func() { cfg.DiscountRate = o.discountRate },
		"seed":           func() { cfg.Seed = o.seed },
		"workers":        func() { cfg.Workers = o.workers },
		"chunk-size":     func() { cfg.ChunkSize = o.chunkSize },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
	return cfg, nil
}
