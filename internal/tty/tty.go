// Package tty produces ANSI style tokens for terminal output and reports the
// terminal width. Every token is an empty string when output is not a
// terminal, so callers can concatenate tokens unconditionally.
package tty

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// DefaultWidth is reported when the terminal width cannot be queried.
const DefaultWidth = 80

// ColorMode selects how terminal detection is overridden.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Detect reports whether f is an interactive terminal.
func Detect(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WidthFunc queries the terminal column count.
type WidthFunc func() (int, error)

// Formatter hands out style tokens. Terminal detection happens once, when
// the formatter is built.
type Formatter struct {
	isTTY   bool
	dynamic bool
	width   int
	query   WidthFunc
}

// New returns a formatter. In dynamic mode the width is sampled once here
// and reused; otherwise Width queries the terminal on every call.
func New(isTTY, dynamic bool) *Formatter {
	return NewWithWidthFunc(isTTY, dynamic, TputWidth)
}

// NewWithWidthFunc is New with a custom width query.
func NewWithWidthFunc(isTTY, dynamic bool, query WidthFunc) *Formatter {
	f := &Formatter{isTTY: isTTY, dynamic: dynamic, query: query}
	if dynamic {
		f.width = f.sampleWidth()
	}
	return f
}

// ForFile builds a formatter for f, honoring mode.
func ForFile(f *os.File, mode ColorMode, dynamic bool) *Formatter {
	var isTTY bool
	switch mode {
	case ColorAlways:
		isTTY = true
	case ColorNever:
		isTTY = false
	default:
		isTTY = Detect(f)
	}
	return New(isTTY, dynamic)
}

// IsTTY reports whether style tokens are enabled.
func (f *Formatter) IsTTY() bool { return f.isTTY }

// Width returns the terminal column count, DefaultWidth on failure.
func (f *Formatter) Width() int {
	if f.dynamic {
		return f.width
	}
	return f.sampleWidth()
}

func (f *Formatter) sampleWidth() int {
	if f.query == nil {
		return DefaultWidth
	}
	w, err := f.query()
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// TputWidth asks tput for the column count.
func TputWidth() (int, error) {
	cmd := exec.Command("tput", "cols")
	cmd.Stdin = os.Stdin
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("tput cols: %w", err)
	}
	w, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("tput cols: %w", err)
	}
	return w, nil
}

func (f *Formatter) escape(code string) string {
	if !f.isTTY {
		return ""
	}
	return "\033[" + code + "m"
}

func (f *Formatter) Bold() string      { return f.escape("1") }
func (f *Formatter) Reset() string     { return f.escape("0") }
func (f *Formatter) Red() string       { return f.escape("0;31") }
func (f *Formatter) Green() string     { return f.escape("0;92") }
func (f *Formatter) Blue() string      { return f.escape("1;34") }
func (f *Formatter) White() string     { return f.escape("1;39") }
func (f *Formatter) Yellow() string    { return f.escape("4;33") }
func (f *Formatter) Em() string        { return f.escape("4;39") }
func (f *Formatter) BoldRed() string   { return f.Red() + f.Bold() }
func (f *Formatter) BoldGreen() string { return f.Green() + f.Bold() }

// MakeBold wraps text in bold and reset tokens.
func (f *Formatter) MakeBold(text string) string {
	return f.Bold() + text + f.Reset()
}

// Error writes a red "error:" label followed by msg.
func (f *Formatter) Error(w io.Writer, msg ...any) {
	f.label(w, f.Red()+"error"+f.Reset(), msg)
}

// Warning writes a blue "warning:" label followed by msg.
func (f *Formatter) Warning(w io.Writer, msg ...any) {
	f.label(w, f.Blue()+"warning"+f.Reset(), msg)
}

// Info writes a bold "info:" label followed by msg.
func (f *Formatter) Info(w io.Writer, msg ...any) {
	f.label(w, f.MakeBold("info"), msg)
}

func (f *Formatter) label(w io.Writer, label string, msg []any) {
	args := append([]any{label + ":"}, msg...)
	fmt.Fprintln(w, args...)
}
