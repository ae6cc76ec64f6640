package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincalc/internal/cli"
	"github.com/theirongolddev/fincalc/internal/pipeline"
	"github.com/theirongolddev/fincalc/internal/ratio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var marginCmd = &cobra.Command{
	Use:   "margin [file|dir ...]",
	Short: "Interest coverage margin of safety for businesses",
	Long: `Reads business data from YAML files (or every .yaml/.yml file in a
directory), asks for anything missing, and prints the net-deductions and
fixed-charges coverage of each business against its category threshold.`,
	Args: cobra.ArbitraryArgs,
	RunE: runMargin,
}

func init() {
	rootCmd.AddCommand(marginCmd)
}

func runMargin(c *cobra.Command, args []string) error {
	out := c.OutOrStdout()
	errOut := c.ErrOrStderr()

	prompter, err := newPrompter(c)
	if err != nil {
		return err
	}

	loader := &pipeline.Loader{
		Thresholds: cfg.ThresholdTable(),
		Prompter:   prompter,
		Logger:     logger,
		Progress: func(current, total int) {
			if flagQuiet || total < 2 {
				return
			}
			fmt.Fprintf(errOut, "\r  Parsing [%d/%d]", current, total)
			if current == total {
				fmt.Fprintln(errOut)
			}
		},
	}

	res, err := loader.Load(args)
	if err != nil {
		return err
	}
	logger.Debug("input loaded",
		zap.Int("files", res.TotalFiles),
		zap.Int("businesses", len(res.Records)),
		zap.Int("prompted", res.Prompted),
		zap.Bool("thresholds_overridden", res.Overridden),
	)

	if res.Overridden && !flagQuiet {
		term.Info(errOut, "threshold table replaced by input file")
	}

	if res.Prompted > 0 {
		fmt.Fprintln(out, cli.Rule)
	}
	fmt.Fprint(out, cli.RenderThresholds(res.Thresholds))
	fmt.Fprintln(out, cli.Rule)

	for _, rec := range res.Records {
		cov, err := ratio.NewInterestCoverage(rec.Category, rec.Income, res.Thresholds)
		if err != nil {
			return &pipeline.ConfigError{Business: rec.Name, Category: rec.Category, Err: err}
		}
		cov.Run()

		fmt.Fprint(out, cli.RenderBusiness(rec, term))
		fmt.Fprintln(out, cov.Render(term))
		fmt.Fprintln(out, cli.Rule)
	}
	return nil
}
