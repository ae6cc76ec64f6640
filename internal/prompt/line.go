// Package prompt asks the user for business fields missing from input files.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/fincalc/internal/model"
)

var (
	// ErrInputClosed is returned when input ends before an answer is read.
	ErrInputClosed = errors.New("input closed before answer")
	// ErrTooManyAttempts is returned when MaxAttempts invalid answers were given.
	ErrTooManyAttempts = errors.New("too many invalid answers")
)

// Line prompts on a plain line-oriented reader such as stdin.
type Line struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	// Emphasize decorates key words in error messages. Defaults to identity.
	Emphasize func(string) string
	// MaxAttempts bounds retries after invalid input; 0 means unbounded.
	MaxAttempts int
}

// NewLine returns a prompter reading answers from in, writing prompts to out
// and retry messages to errOut.
func NewLine(in io.Reader, out, errOut io.Writer) *Line {
	return &Line{
		in:        bufio.NewReader(in),
		out:       out,
		errOut:    errOut,
		Emphasize: func(s string) string { return s },
	}
}

// readLine prints prompt and returns the next line without its newline.
func (l *Line) readLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	s, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// retry runs ask until it succeeds. ask returns a non-nil message for input
// that should be rejected and asked again.
func (l *Line) retry(ask func() (msg string, err error)) error {
	for attempt := 1; ; attempt++ {
		msg, err := ask()
		if err != nil {
			return err
		}
		if msg == "" {
			return nil
		}
		fmt.Fprintln(l.errOut, msg)
		if l.MaxAttempts > 0 && attempt >= l.MaxAttempts {
			return ErrTooManyAttempts
		}
	}
}

// Name asks for the business name.
func (l *Line) Name() (string, error) {
	s, err := l.readLine("business name: ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Category presents categories as a numbered menu and returns the choice.
func (l *Line) Category(categories []model.Category) (model.Category, error) {
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = string(c)
	}
	idx, err := l.Choose("select business type:", labels)
	if err != nil {
		return "", err
	}
	return categories[idx], nil
}

// Choose prints a numbered menu and returns the index of the chosen option.
// Non-integer or out-of-range answers re-prompt.
func (l *Line) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to choose from")
	}

	var choice int
	err := l.retry(func() (string, error) {
		fmt.Fprintln(l.out, title)
		for i, o := range options {
			fmt.Fprintf(l.out, "%d: %s\n", i, o)
		}
		s, err := l.readLine("> ")
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Sprintf("please, enter an %s value", l.Emphasize("integer")), nil
		}
		if n < 0 || n >= len(options) {
			return fmt.Sprintf("please, enter an integer value from 0 to %s",
				l.Emphasize(strconv.Itoa(len(options)-1))), nil
		}
		choice = n
		return "", nil
	})
	return choice, err
}

// Income asks for one income figure. Only integers are accepted.
func (l *Line) Income(field model.IncomeField) (int64, error) {
	prompt := fmt.Sprintf("input %s income: ", capitalize(field.String()))

	var v int64
	err := l.retry(func() (string, error) {
		s, err := l.readLine(prompt)
		if err != nil {
			return "", err
		}
		n, err := ParseInteger(s)
		if err != nil {
			return "please, enter integer value", nil
		}
		v = n
		return "", nil
	})
	return v, err
}

// ParseInteger parses a base-10 integer answer, ignoring surrounding space.
func ParseInteger(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
