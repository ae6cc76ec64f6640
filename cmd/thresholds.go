package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincalc/internal/cli"
	"github.com/theirongolddev/fincalc/internal/pipeline"

	"github.com/spf13/cobra"
)

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds [file|dir ...]",
	Short: "Show the effective category threshold table",
	Args:  cobra.ArbitraryArgs,
	RunE:  runThresholds,
}

func init() {
	rootCmd.AddCommand(thresholdsCmd)
}

func runThresholds(c *cobra.Command, args []string) error {
	table, overridden, err := pipeline.ResolveThresholds(args, cfg.ThresholdTable())
	if err != nil {
		return err
	}

	origin := "built-in"
	switch {
	case overridden:
		origin = "input file"
	case len(cfg.Thresholds) > 0:
		origin = "config"
	}

	rows := make([][]string, 0, table.Len())
	for _, th := range table.SortedByValue() {
		rows = append(rows, []string{string(th.Category), cli.FormatThreshold(th.Min)})
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("THRESHOLDS", term.Width()))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   "Source: " + origin,
		Headers: []string{"Category", "Minimum"},
		Rows:    rows,
	}))
	return nil
}
