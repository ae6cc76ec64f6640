package cmd

import (
	"fmt"

	"github.com/theirongolddev/fincalc/internal/config"
	"github.com/theirongolddev/fincalc/internal/prompt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()
	l := prompt.NewLine(c.InOrStdin(), out, c.ErrOrStderr())
	l.Emphasize = term.MakeBold

	// cfg already holds the existing config or defaults
	next := cfg

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to fincalc!")
	fmt.Fprintln(out)

	colors := []string{"auto", "always", "never"}
	i, err := l.Choose("1. Color output", colors)
	if err != nil {
		return err
	}
	next.Appearance.Color = colors[i]
	fmt.Fprintln(out)

	prompts := []string{config.PromptLine, config.PromptForm}
	i, err = l.Choose("2. Prompt style for missing business data", prompts)
	if err != nil {
		return err
	}
	next.General.Prompt = prompts[i]
	fmt.Fprintln(out)

	decimals := []string{"0 (47%)", "1 (47.1%)", "2 (47.14%)"}
	i, err = l.Choose("3. Decimals of the avg relative deviation", decimals)
	if err != nil {
		return err
	}
	next.General.PercentDecimals = i

	path := configPath()
	if config.Exists(path) {
		term.Warning(c.ErrOrStderr(), "overwriting", path)
	}
	if err := config.SaveTo(path, next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", path)
	fmt.Fprintln(out, "  Run `fincalc setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
