package ratio

import "github.com/theirongolddev/fincalc/internal/model"

// InterestCoverage runs the net-deductions and fixed-charges tests for one
// business. Exactly one of the two is highlighted: net deductions when
// operating income exceeds gross income, fixed charges otherwise.
type InterestCoverage struct {
	NetDeductions *Test
	FixedCharges  *Test

	income model.Income
}

// NewInterestCoverage builds both tests for category.
func NewInterestCoverage(category model.Category, income model.Income, table model.ThresholdTable) (*InterestCoverage, error) {
	highlightNet := income.Operating > income.Gross

	nd, err := NewTest(NetDeductions, category, table, highlightNet)
	if err != nil {
		return nil, err
	}
	fc, err := NewTest(FixedCharges, category, table, !highlightNet)
	if err != nil {
		return nil, err
	}
	return &InterestCoverage{NetDeductions: nd, FixedCharges: fc, income: income}, nil
}

// Run runs both tests.
func (c *InterestCoverage) Run() {
	c.NetDeductions.RunIncome(c.income)
	c.FixedCharges.RunIncome(c.income)
}

// Render returns the net-deductions line followed by the fixed-charges line.
func (c *InterestCoverage) Render(p Palette) string {
	return c.NetDeductions.Render(p) + "\n" + c.FixedCharges.Render(p)
}
