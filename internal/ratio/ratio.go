// Package ratio computes interest coverage ratios and their margin of
// safety against a category threshold.
package ratio

import (
	"fmt"
	"math"

	"github.com/theirongolddev/fincalc/internal/model"
)

// Kind selects which two income figures a test compares.
type Kind struct {
	Label string
	X, Y  model.IncomeField
}

var (
	// FixedCharges compares gross income against net income.
	FixedCharges = Kind{Label: "Fixed Charges earned", X: model.Gross, Y: model.Net}
	// NetDeductions compares operating income against net income.
	NetDeductions = Kind{Label: "Net Deductions earned", X: model.Operating, Y: model.Net}
)

// Result is the outcome of one ratio test.
type Result struct {
	Value             float64
	Error             float64
	Delta             float64
	DeltaErrorPercent float64
}

// Compute evaluates x/(x-y) against threshold.
//
// Both inputs are treated as Poisson counts (error sqrt(x), sqrt(y), no
// correlation), which gives err = sqrt(x*y*(x+y)/(x-y)^4). The error is
// zero unless both inputs are positive. A zero denominator, x == y or a
// zero threshold, yields the zero Result.
func Compute(x, y, threshold float64) Result {
	d := x - y
	if d == 0 || threshold == 0 {
		return Result{}
	}

	r := Result{Value: x / d}
	if x > 0 && y > 0 {
		r.Error = math.Sqrt(x * y * (x + y) / math.Pow(d, 4))
	}
	r.Delta = r.Value - threshold
	r.DeltaErrorPercent = 100 * math.Abs(r.Delta) / threshold
	return r
}

// Palette supplies the color tokens used by Render.
type Palette interface {
	Green() string
	Red() string
	BoldGreen() string
	BoldRed() string
	Reset() string
}

// Test is one ratio test bound to a category threshold.
type Test struct {
	Kind      Kind
	Category  model.Category
	Threshold float64
	Highlight bool

	result Result
}

// NewTest resolves category in table. An empty category means
// model.DefaultCategory.
func NewTest(kind Kind, category model.Category, table model.ThresholdTable, highlight bool) (*Test, error) {
	c, threshold, err := table.Resolve(category)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind.Label, c, err)
	}
	return &Test{
		Kind:      kind,
		Category:  c,
		Threshold: threshold,
		Highlight: highlight,
	}, nil
}

// Run computes the result for x and y and keeps it as the current result.
func (t *Test) Run(x, y float64) Result {
	t.result = Compute(x, y, t.Threshold)
	return t.result
}

// RunIncome runs the test on the two figures its Kind selects.
func (t *Test) RunIncome(in model.Income) Result {
	return t.Run(float64(in.Get(t.Kind.X)), float64(in.Get(t.Kind.Y)))
}

// Result returns the result of the last Run.
func (t *Test) Result() Result { return t.result }

// Render formats the current result as one labeled line.
//
// A highlighted test is prefixed with "> " and shown bold, red when below
// the threshold. Otherwise the value is green when it beats the threshold
// or is negative, and red when it does not.
func (t *Test) Render(p Palette) string {
	r := t.result

	prefix := ""
	var color string
	if t.Highlight {
		prefix = "> "
		if r.Delta < 0 {
			color = p.BoldRed()
		} else {
			color = p.BoldGreen()
		}
	} else if r.Value < 0 || r.Delta > 0 {
		color = p.Green()
	} else {
		color = p.Red()
	}

	return fmt.Sprintf("%s: %s%s%.2f%s +/- %.2f (delta: %.2f | %.1f%%)",
		t.Kind.Label, prefix, color, r.Value, p.Reset(),
		r.Error, r.Delta, r.DeltaErrorPercent)
}
