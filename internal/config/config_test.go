package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/fincalc/internal/model"
)

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultConfig()
	if cfg.General != def.General || cfg.Logging != def.Logging || cfg.Progression != def.Progression {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	table := cfg.ThresholdTable()
	if table.Len() != 3 || !table.Has(model.Industrial) {
		t.Errorf("ThresholdTable() = %v, want built-in table", table.Categories())
	}
}

func TestLoadFrom_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t,
		"[general]",
		"percent_decimals = 2",
		"",
		"[logging]",
		`level = "debug"`,
	)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.PercentDecimals != 2 {
		t.Errorf("PercentDecimals = %d, want 2", cfg.General.PercentDecimals)
	}
	if cfg.General.Prompt != PromptLine {
		t.Errorf("Prompt = %q, want default %q", cfg.General.Prompt, PromptLine)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadFrom_ThresholdsKeepFileOrder(t *testing.T) {
	path := writeConfig(t,
		"[thresholds]",
		"zeta = 1.5",
		"alpha = 2",
		"railroad = 2.25",
	)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cats := cfg.ThresholdTable().Categories()
	want := []model.Category{"zeta", "alpha", model.Railroad}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
	if v, _ := cfg.ThresholdTable().Lookup("alpha"); v != 2 {
		t.Errorf("alpha = %v, want 2", v)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"bad toml", []string{"[general", "x = 1"}},
		{"bad prompt", []string{"[general]", `prompt = "voice"`}},
		{"negative decimals", []string{"[general]", "percent_decimals = -1"}},
		{"negative window", []string{"[progression]", "window = -2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(writeConfig(t, tt.lines...)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.Prompt = PromptForm
	cfg.Appearance.Color = "never"
	cfg.Inflation.Rates = []float64{2, 3}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if !Exists(path) {
		t.Fatal("config file not written")
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.General.Prompt != PromptForm || got.Appearance.Color != "never" {
		t.Errorf("round trip lost settings: %+v", got)
	}
	if rates := got.InflationRates(nil); len(rates) != 2 || rates[1] != 3 {
		t.Errorf("InflationRates = %v", rates)
	}
}

func TestSaveTo_KeepsThresholdOrder(t *testing.T) {
	src := writeConfig(t,
		"[general]",
		"percent_decimals = 1",
		"",
		"[thresholds]",
		"zeta = 1.5",
		"alpha = 2",
		"public-utility = 1.75",
	)
	cfg, err := LoadFrom(src)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	path := filepath.Join(t.TempDir(), "saved.toml")
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom saved: %v", err)
	}

	cats := got.ThresholdTable().Categories()
	want := []model.Category{"zeta", "alpha", model.PublicUtility}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
	if v, _ := got.ThresholdTable().Lookup(model.PublicUtility); v != 1.75 {
		t.Errorf("public-utility = %v, want 1.75", v)
	}
	if got.General.PercentDecimals != 1 {
		t.Errorf("PercentDecimals = %d, want 1", got.General.PercentDecimals)
	}
}

func TestInflationRates_FallsBack(t *testing.T) {
	builtin := []float64{1}
	if got := DefaultConfig().InflationRates(builtin); len(got) != 1 || got[0] != 1 {
		t.Errorf("InflationRates = %v, want builtin", got)
	}
}

func TestDir_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != filepath.Join("/tmp/xdg", "fincalc", "config.toml") {
		t.Errorf("Path() = %q", got)
	}
}
