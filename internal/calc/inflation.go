package calc

// DefaultInflationRates are yearly US inflation rates in percent, used when
// no rates are given.
var DefaultInflationRates = []float64{1.9, 3.3, 3.4, 2.5, 4.1, 0.1, 2.7, 1.5, 3.0, 1.7, 1.5}

// Inflation is the result of compounding yearly rates.
type Inflation struct {
	Rates    []float64
	Compound float64 // percent
	Sum      float64 // plain sum of the rates, percent
}

// Years returns the number of rates compounded.
func (in Inflation) Years() int { return len(in.Rates) }

// Compound multiplies out yearly percentage rates.
func Compound(rates []float64) Inflation {
	factor := 1.0
	var sum float64
	for _, r := range rates {
		factor *= 1 + r/100
		sum += r
	}
	kept := make([]float64, len(rates))
	copy(kept, rates)
	return Inflation{
		Rates:    kept,
		Compound: (factor - 1) * 100,
		Sum:      sum,
	}
}

// Step is the running total after one year.
type Step struct {
	Year       int
	Rate       float64
	Cumulative float64 // compound percent so far
}

// Steps returns the cumulative compound inflation after each year.
func (in Inflation) Steps() []Step {
	steps := make([]Step, len(in.Rates))
	factor := 1.0
	for i, r := range in.Rates {
		factor *= 1 + r/100
		steps[i] = Step{Year: i + 1, Rate: r, Cumulative: (factor - 1) * 100}
	}
	return steps
}
