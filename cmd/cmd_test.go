package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/fincalc/internal/cli"
	"github.com/theirongolddev/fincalc/internal/config"
	"github.com/theirongolddev/fincalc/internal/model"
	"github.com/theirongolddev/fincalc/internal/prompt"
)

// execute runs the command tree with a config path inside a temp dir and
// returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeAll(t, stdin, args...)
	return out, err
}

// executeAll is execute that also returns stderr.
func executeAll(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	flagConfig, flagColor, flagLogLevel, flagPrompt = "", "", "", ""
	flagVerbose, flagQuiet, flagBreakdown = false, false, false
	flagPercentDecimals, flagWindow = -1, 0

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	base := []string{"--config", filepath.Join(t.TempDir(), "config.toml"), "--color", "never"}
	rootCmd.SetArgs(append(base, args...))

	err := runRoot()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const acmeReport = "Business types and thresholds\n" +
	"  public-utility: 1.75\n" +
	"        railroad: 2\n" +
	"      industrial: 3\n" +
	"---------------\n" +
	"business: Acme category: industrial with income\n" +
	"  operating: 400\n" +
	"      gross: 300\n" +
	"        net: 100\n" +
	"Net Deductions earned: > 1.33 +/- 0.05 (delta: -1.67 | 55.6%)\n" +
	"Fixed Charges earned: 1.50 +/- 0.09 (delta: -1.50 | 50.0%)\n" +
	"---------------\n"

func TestMargin_FromFile(t *testing.T) {
	path := writeFile(t, "acme.yaml", `
- name: Acme
  type: industrial
  income: {operating: 400, gross: 300, net: 100}
`)

	got, err := execute(t, "", "margin", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != acmeReport {
		t.Errorf("output =\n%s\nwant\n%s", got, acmeReport)
	}
}

func TestMargin_IsDefaultCommand(t *testing.T) {
	path := writeFile(t, "acme.yaml", "- {name: Acme, type: industrial, income: {operating: 400, gross: 300, net: 100}}\n")

	got, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != acmeReport {
		t.Errorf("output =\n%s\nwant\n%s", got, acmeReport)
	}
}

func TestMargin_PromptsForMissingFields(t *testing.T) {
	// name, category index 2 (industrial in default order), three incomes
	got, err := execute(t, "Acme\n2\n400\n300\n100\n", "margin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "business name: ") {
		t.Errorf("expected name prompt in output:\n%s", got)
	}
	if !strings.HasSuffix(got, "---------------\n"+acmeReport) {
		t.Errorf("output does not end with the report:\n%s", got)
	}
}

func TestMargin_InputClosed(t *testing.T) {
	_, err := execute(t, "Acme\n", "margin")
	if !errors.Is(err, prompt.ErrInputClosed) {
		t.Errorf("err = %v, want ErrInputClosed", err)
	}
}

func TestMargin_UnsupportedCategory(t *testing.T) {
	path := writeFile(t, "bad.yaml", "- {name: Acme, type: shipping, income: {operating: 1, gross: 2, net: 3}}\n")

	_, err := execute(t, "", "margin", path)
	if !errors.Is(err, model.ErrUnsupportedCategory) {
		t.Errorf("err = %v, want ErrUnsupportedCategory", err)
	}
}

func TestThresholds_ShowsOverride(t *testing.T) {
	path := writeFile(t, "t.yaml", "thresholds: {shipping: 2.5, railroad: 1.25}\n")

	got, err := execute(t, "", "thresholds", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"THRESHOLDS", "Source: input file", "shipping", "2.5", "1.25"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "industrial") {
		t.Errorf("default table leaked into override:\n%s", got)
	}
	if strings.Index(got, "railroad") > strings.Index(got, "shipping") {
		t.Errorf("rows not sorted by value:\n%s", got)
	}
}

func TestAvg(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"avg", "1", "2", "3", "4", "5"}, "3.00 +- 1.41 (47%)\n"},
		{[]string{"avg", "--percent-decimals", "2", "1", "2", "3", "4", "5"}, "3.00 +- 1.41 (47.14%)\n"},
		{[]string{"avg", "--", "-1", "1"}, "0.00 +- 1.00\n"},
	}
	for _, tt := range tests {
		got, err := execute(t, "", tt.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}

	if _, err := execute(t, "", "avg", "x"); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestInflation(t *testing.T) {
	got, err := execute(t, "", "inflation", "10", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "inflation calculated for 2 years is 21.0 %\nsum 20.0 %\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	got, err = execute(t, "", "inflation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "inflation calculated for 11 years is ") || !strings.HasSuffix(got, "sum 25.7 %\n") {
		t.Errorf("default series output = %q", got)
	}
}

func TestInflation_Breakdown(t *testing.T) {
	got, err := execute(t, "", "inflation", "--breakdown", "10", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Inflation by year", "Compound", "10.0%", "21.0%", "20.0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("breakdown missing %q:\n%s", want, got)
		}
	}
}

func TestProgression(t *testing.T) {
	got, err := execute(t, "", "progression", "7", "--window", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), got)
	}
	if lines[0] != " 0  1.0 avg:  0.0" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[5] != " 5  2.0 avg:  1.0" {
		t.Errorf("line 5 = %q", lines[5])
	}
	if lines[6] != " 6  2.4 avg:  1.2" {
		t.Errorf("line 6 = %q", lines[6])
	}
}

func TestSetupSavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fincalc", "config.toml")

	// color never, form prompts, one decimal
	got, err := execute(t, "2\n1\n1\n", "setup", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Saved to "+path) {
		t.Errorf("missing save notice:\n%s", got)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if cfg.Appearance.Color != "never" || cfg.General.Prompt != config.PromptForm || cfg.General.PercentDecimals != 1 {
		t.Errorf("saved config = %+v", cfg)
	}
}

func TestConfigShowsDefaults(t *testing.T) {
	got, err := execute(t, "", "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"using defaults", "Prompt:           line", "built-in defaults", "Window: 5"} {
		if !strings.Contains(got, want) {
			t.Errorf("config output missing %q:\n%s", want, got)
		}
	}
}

func TestInvalidPromptStyle(t *testing.T) {
	if _, err := execute(t, "", "margin", "--prompt", "shout"); err == nil {
		t.Error("expected error for unknown prompt style")
	}
}

func TestErrorsReportedOnStderr(t *testing.T) {
	_, stderr, err := executeAll(t, "", "avg", "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "error: invalid number \"x\"\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestMargin_OverrideNoticeOnStderr(t *testing.T) {
	path := writeFile(t, "in.yaml", `
thresholds: {industrial: 1}
businesses:
  - {name: Acme, type: industrial, income: {operating: 400, gross: 300, net: 100}}
`)

	stdout, stderr, err := executeAll(t, "", "margin", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "info: threshold table replaced by input file\n" {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.HasPrefix(stdout, "Business types and thresholds\n  industrial: 1\n"+cli.Rule) {
		t.Errorf("stdout = %q", stdout)
	}

	_, stderr, err = executeAll(t, "", "margin", "-q", path)
	if err != nil || stderr != "" {
		t.Errorf("quiet run: stderr = %q, err = %v", stderr, err)
	}
}

func TestSetupWarnsBeforeOverwrite(t *testing.T) {
	path := writeFile(t, "config.toml", "[general]\npercent_decimals = 2\n")

	_, stderr, err := executeAll(t, "0\n0\n0\n", "setup", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "warning: overwriting "+path+"\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestFormPrompterAccessibleWithoutTerminal(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	f := newFormPrompter(in, &out)
	if !f.Accessible {
		t.Error("form should use accessible mode for non-terminal input")
	}
	if f.In != io.Reader(in) || f.Out != io.Writer(&out) {
		t.Error("form should read and write through the command streams")
	}

	pipe, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer pipe.Close()
	defer w.Close()
	if f := newFormPrompter(pipe, &out); !f.Accessible {
		t.Error("a pipe is not a terminal")
	}
}
