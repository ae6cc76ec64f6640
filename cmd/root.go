// Package cmd implements the fincalc CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/fincalc/internal/config"
	"github.com/theirongolddev/fincalc/internal/logging"
	"github.com/theirongolddev/fincalc/internal/pipeline"
	"github.com/theirongolddev/fincalc/internal/prompt"
	"github.com/theirongolddev/fincalc/internal/tty"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig   string
	flagColor    string
	flagLogLevel string
	flagVerbose  bool
	flagQuiet    bool
	flagPrompt   string
)

// runtime state shared by commands, set up before each command runs.
var (
	cfg    config.Config
	logger = zap.NewNop()
	term   = tty.New(false, false)
)

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Small financial calculators",
	Long: `fincalc bundles a few small calculators:

  margin       interest coverage margin of safety for businesses
  thresholds   show the category threshold table
  avg          mean and standard deviation
  inflation    compound inflation over yearly rates
  progression  doubling-average sequence demo

Running fincalc without a command runs margin.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMargin,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := runRoot(); err != nil {
		os.Exit(1)
	}
}

// runRoot executes the command tree and reports a failure on stderr.
func runRoot() error {
	err := rootCmd.Execute()
	if err != nil {
		term.Error(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagPrompt, "prompt", "", "Prompt style for missing fields: line or form")
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// setup loads the config and builds the logger and terminal formatter.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.LoadFrom(configPath())
	if err != nil {
		return err
	}

	level := flagLogLevel
	if flagVerbose {
		level = "debug"
	}
	logger, err = logging.New(cfg.Logging, level)
	if err != nil {
		return err
	}

	colorSetting := cfg.Appearance.Color
	if flagColor != "" {
		colorSetting = flagColor
	}
	mode, err := tty.ParseColorMode(colorSetting)
	if err != nil {
		return err
	}
	term = tty.ForFile(os.Stdout, mode, true)

	logger.Debug("configuration loaded",
		zap.String("path", configPath()),
		zap.Bool("exists", config.Exists(configPath())),
		zap.Bool("tty", term.IsTTY()),
	)
	return nil
}

// newPrompter builds the prompter selected by --prompt or the config.
func newPrompter(c *cobra.Command) (pipeline.Prompter, error) {
	style := cfg.General.Prompt
	if flagPrompt != "" {
		style = flagPrompt
	}
	switch style {
	case "", config.PromptLine:
		l := prompt.NewLine(c.InOrStdin(), c.OutOrStdout(), c.ErrOrStderr())
		l.Emphasize = term.MakeBold
		return l, nil
	case config.PromptForm:
		return newFormPrompter(c.InOrStdin(), c.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("invalid prompt style %q (want line or form)", style)
	}
}

// newFormPrompter falls back to huh's accessible line mode unless in is a
// terminal.
func newFormPrompter(in io.Reader, out io.Writer) *prompt.Form {
	f := prompt.NewForm()
	f.In = in
	f.Out = out
	file, ok := in.(*os.File)
	f.Accessible = !ok || !tty.Detect(file)
	return f
}
