package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-simulator/internal/config"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example YAML configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.NewInputParser().CreateExampleConfiguration()
			return config.WriteConfiguration(cmd.OutOrStdout(), example)
		},
	}
}
