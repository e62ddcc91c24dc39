package commands

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/rentsplit/internal/report"
)

// RootCmd returns the rentsplit command with every report subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rentsplit",
		Short:         "Rental pricing and settlement tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("source", "", "Input source: json or sqlite")
	flags.String("input", "", "Path to the input file or database")
	flags.String("output", "", "Path the report is written to")
	flags.Bool("stdout", true, "Also print the report to stdout")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(
		PriceCmd(),
		FeesCmd(),
		ActionsCmd(),
		ModificationsCmd(),
	)
	return rootCmd
}

func PriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Compute the price of every rental",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, report.LevelPrice)
		},
	}
}

func FeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fees",
		Short: "Compute prices and the commission split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, report.LevelFees)
		},
	}
}

func ActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "Compute the debit and credit actions of every rental",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, report.LevelActions)
		},
	}
}

func ModificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modifications",
		Short: "Compute the adjusting actions of every rental modification",
		Long:  `Each modification is diffed against its original rental. Positive deltas are credits to the actor and negative ones debits; the driver side is inverted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, report.LevelModifications)
		},
	}
}
