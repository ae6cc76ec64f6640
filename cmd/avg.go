package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincalc/internal/calc"
	"github.com/theirongolddev/fincalc/internal/cli"

	"github.com/spf13/cobra"
)

var flagPercentDecimals int

var avgCmd = &cobra.Command{
	Use:   "avg VALUE...",
	Short: "Mean and population standard deviation of values",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAvg,
}

func init() {
	avgCmd.Flags().IntVar(&flagPercentDecimals, "percent-decimals", -1, "Decimals of the relative deviation (default from config)")
	rootCmd.AddCommand(avgCmd)
}

func runAvg(c *cobra.Command, args []string) error {
	values, err := cli.ParseFloats(args)
	if err != nil {
		return err
	}
	s, err := calc.Summarize(values)
	if err != nil {
		return err
	}

	decimals := cfg.General.PercentDecimals
	if flagPercentDecimals >= 0 {
		decimals = flagPercentDecimals
	}
	fmt.Fprintln(c.OutOrStdout(), s.Format(decimals))
	return nil
}
