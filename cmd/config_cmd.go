package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fincalc/internal/cli"
	"github.com/theirongolddev/fincalc/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()
	path := configPath()

	fmt.Fprintf(out, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Percent decimals: %d\n", cfg.General.PercentDecimals)
	fmt.Fprintf(out, "    Prompt:           %s\n", valueOr(cfg.General.Prompt, config.PromptLine))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Color: %s\n", valueOr(cfg.Appearance.Color, "auto"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level:  %s\n", valueOr(cfg.Logging.Level, "warn"))
	fmt.Fprintf(out, "    Format: %s\n", valueOr(cfg.Logging.Format, "console"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Thresholds]")
	if len(cfg.Thresholds) == 0 {
		fmt.Fprintln(out, "    built-in defaults")
	} else {
		for _, th := range cfg.ThresholdTable().Entries() {
			fmt.Fprintf(out, "    %s = %s\n", th.Category, cli.FormatThreshold(th.Min))
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Inflation]")
	if len(cfg.Inflation.Rates) == 0 {
		fmt.Fprintln(out, "    Rates: built-in series")
	} else {
		rates := make([]string, len(cfg.Inflation.Rates))
		for i, r := range cfg.Inflation.Rates {
			rates[i] = cli.FormatThreshold(r)
		}
		fmt.Fprintf(out, "    Rates: %s\n", strings.Join(rates, ", "))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Progression]")
	fmt.Fprintf(out, "    Points: %d\n", cfg.Progression.Points)
	fmt.Fprintf(out, "    Window: %d\n", cfg.Progression.Window)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `fincalc setup` to reconfigure.")
	return nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
