package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincalc/internal/calc"
	"github.com/theirongolddev/fincalc/internal/cli"

	"github.com/spf13/cobra"
)

var flagBreakdown bool

var inflationCmd = &cobra.Command{
	Use:   "inflation [RATE...]",
	Short: "Compound inflation over yearly rates in percent",
	Long: `Compounds yearly inflation rates given in percent. Without arguments the
rates come from the [inflation] config section, or a built-in 11-year
US series.`,
	RunE: runInflation,
}

func init() {
	inflationCmd.Flags().BoolVar(&flagBreakdown, "breakdown", false, "Show the cumulative value after each year")
	rootCmd.AddCommand(inflationCmd)
}

func runInflation(c *cobra.Command, args []string) error {
	rates := cfg.InflationRates(calc.DefaultInflationRates)
	if len(args) > 0 {
		var err error
		if rates, err = cli.ParseFloats(args); err != nil {
			return err
		}
	}

	in := calc.Compound(rates)
	out := c.OutOrStdout()

	if flagBreakdown {
		rows := make([][]string, 0, in.Years()+2)
		for _, s := range in.Steps() {
			rows = append(rows, []string{
				fmt.Sprintf("%d", s.Year),
				cli.FormatPercent(s.Rate, 1),
				cli.FormatPercent(s.Cumulative, 1),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"sum", cli.FormatPercent(in.Sum, 1), cli.FormatPercent(in.Compound, 1)})
		fmt.Fprint(out, cli.RenderTable(cli.Table{
			Title:   "Inflation by year",
			Headers: []string{"Year", "Rate", "Compound"},
			Rows:    rows,
		}))
		return nil
	}

	fmt.Fprintf(out, "inflation calculated for %d years is %.1f %%\n", in.Years(), in.Compound)
	fmt.Fprintf(out, "sum %.1f %%\n", in.Sum)
	return nil
}
