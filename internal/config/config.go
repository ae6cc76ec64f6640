// Package config loads the fincalc user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/theirongolddev/fincalc/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all fincalc configuration.
type Config struct {
	General     GeneralConfig      `toml:"general"`
	Appearance  AppearanceConfig   `toml:"appearance"`
	Logging     LoggingConfig      `toml:"logging"`
	Thresholds  map[string]float64 `toml:"thresholds,omitempty"`
	Inflation   InflationConfig    `toml:"inflation"`
	Progression ProgressionConfig  `toml:"progression"`

	// thresholdOrder is the key order of [thresholds] in the file.
	thresholdOrder []string
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	PercentDecimals int    `toml:"percent_decimals"`
	Prompt          string `toml:"prompt"` // line, form
}

// AppearanceConfig holds terminal output settings.
type AppearanceConfig struct {
	Color string `toml:"color"` // auto, always, never
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console, json
}

// InflationConfig holds the default yearly rates.
type InflationConfig struct {
	Rates []float64 `toml:"rates,omitempty"`
}

// ProgressionConfig holds progression defaults.
type ProgressionConfig struct {
	Points int `toml:"points"`
	Window int `toml:"window"`
}

// Prompt styles.
const (
	PromptLine = "line"
	PromptForm = "form"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			PercentDecimals: 0,
			Prompt:          PromptLine,
		},
		Appearance: AppearanceConfig{
			Color: "auto",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Progression: ProgressionConfig{
			Points: 10,
			Window: 5,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fincalc")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist. Keys missing from the file keep their default values.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "thresholds" {
			cfg.thresholdOrder = append(cfg.thresholdOrder, key[1])
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed by the TOML types alone.
func (c Config) Validate() error {
	switch c.General.Prompt {
	case "", PromptLine, PromptForm:
	default:
		return fmt.Errorf("config: general.prompt must be %q or %q, got %q", PromptLine, PromptForm, c.General.Prompt)
	}
	if c.General.PercentDecimals < 0 {
		return fmt.Errorf("config: general.percent_decimals must not be negative")
	}
	if c.Progression.Points < 0 || c.Progression.Window < 0 {
		return fmt.Errorf("config: progression points and window must not be negative")
	}
	return nil
}

// ThresholdTable returns the base threshold table: the built-in defaults,
// or the [thresholds] section in file order when one is configured.
func (c Config) ThresholdTable() model.ThresholdTable {
	if len(c.Thresholds) == 0 {
		return model.DefaultThresholds()
	}

	order := make([]string, 0, len(c.Thresholds))
	seen := make(map[string]bool, len(c.Thresholds))
	for _, k := range c.thresholdOrder {
		if _, ok := c.Thresholds[k]; ok && !seen[k] {
			order = append(order, k)
			seen[k] = true
		}
	}
	// Keys set in code rather than read from a file have no recorded order.
	var rest []string
	for k := range c.Thresholds {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	entries := make([]model.Threshold, len(order))
	for i, k := range order {
		entries[i] = model.Threshold{Category: model.Category(k), Min: c.Thresholds[k]}
	}
	return model.NewThresholdTable(entries...)
}

// InflationRates returns the configured rates or the built-in series.
func (c Config) InflationRates(builtin []float64) []float64 {
	if len(c.Inflation.Rates) > 0 {
		return c.Inflation.Rates
	}
	return builtin
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	// Maps are encoded with sorted keys; write [thresholds] by hand so the
	// category order survives a round trip.
	body := cfg
	body.Thresholds = nil
	if err := toml.NewEncoder(f).Encode(body); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if len(cfg.Thresholds) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(f, "\n[thresholds]"); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	for _, th := range cfg.ThresholdTable().Entries() {
		line := map[string]float64{string(th.Category): th.Min}
		if err := toml.NewEncoder(f).Encode(line); err != nil {
			return fmt.Errorf("encoding threshold %s: %w", th.Category, err)
		}
	}
	return nil
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
