package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-simulator/internal/calculation"
	"github.com/rpgo/portfolio-simulator/internal/config"
	"github.com/rpgo/portfolio-simulator/internal/output"
)

// newCalibrateCmd estimates return parameters from a year,return CSV
func newCalibrateCmd() *cobra.Command {
	var returnsFile string
	var asYAML bool

	calibrateCmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Estimate average return and standard deviation from historical returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := calculation.LoadReturnHistory(returnsFile)
			if err != nil {
				return err
			}
			if history.Skipped > 0 {
				logrus.Warnf("skipped %d malformed rows in %s", history.Skipped, returnsFile)
			}
			cal, err := history.Calibrate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYAML {
				cfg := config.DefaultConfiguration()
				cal.Apply(cfg)
				return config.WriteConfiguration(out, cfg)
			}

			fmt.Fprintf(out, "Observations:   %d (%d-%d)\n", cal.Count, cal.MinYear, cal.MaxYear)
			fmt.Fprintf(out, "Average return: %.6f (%s)\n", cal.AverageReturn, output.FormatRate(cal.AverageReturn))
			fmt.Fprintf(out, "Std deviation:  %.6f (%s)\n", cal.StdDev, output.FormatRate(cal.StdDev))
			if len(history.MissingYears) > 0 {
				years := make([]string, len(history.MissingYears))
				for i, y := range history.MissingYears {
					years[i] = fmt.Sprint(y)
				}
				fmt.Fprintf(out, "Missing years:  %s\n", strings.Join(years, ", "))
			}
			return nil
		},
	}
	calibrateCmd.Flags().StringVar(&returnsFile, "returns", "", "CSV file with a header row and year,return rows")
	calibrateCmd.Flags().BoolVar(&asYAML, "yaml", false, "Print a default configuration carrying the calibrated parameters")
	_ = calibrateCmd.MarkFlagRequired("returns")
	return calibrateCmd
}
