package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/fincalc/internal/calc"

	"github.com/spf13/cobra"
)

var flagWindow int

var progressionCmd = &cobra.Command{
	Use:   "progression [POINTS]",
	Short: "Print a doubling-average sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProgression,
}

func init() {
	progressionCmd.Flags().IntVar(&flagWindow, "window", 0, "Averaging window (default from config)")
	rootCmd.AddCommand(progressionCmd)
}

func runProgression(c *cobra.Command, args []string) error {
	points := cfg.Progression.Points
	if points == 0 {
		points = calc.DefaultProgressionPoints
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid number of points %q", args[0])
		}
		points = n
	}

	window := cfg.Progression.Window
	if flagWindow > 0 {
		window = flagWindow
	}

	out := c.OutOrStdout()
	for _, p := range calc.Progression(points, window) {
		fmt.Fprintf(out, "%2d %4.1f avg: %4.1f\n", p.Index, p.Value, p.Average)
	}
	return nil
}
