// Package calc holds the small standalone calculators: mean and spread,
// compound inflation and the doubling-average progression.
package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoValues is returned when there is nothing to summarize.
var ErrNoValues = errors.New("no values given")

// Summary is the mean and population standard deviation of a sample.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
}

// Summarize computes the mean and population standard deviation of values.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}

	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: math.Sqrt(sq / n),
	}, nil
}

// RelativePercent returns the standard deviation as a percentage of the
// mean. ok is false when the mean is zero.
func (s Summary) RelativePercent() (pct float64, ok bool) {
	if s.Mean == 0 {
		return 0, false
	}
	return s.StdDev / s.Mean * 100, true
}

// Format renders "mean +- stddev (pct%)" with the percentage printed to
// percentDecimals places. The percentage is left out for a zero mean.
func (s Summary) Format(percentDecimals int) string {
	if percentDecimals < 0 {
		percentDecimals = 0
	}
	out := fmt.Sprintf("%.2f +- %.2f", s.Mean, s.StdDev)
	if pct, ok := s.RelativePercent(); ok {
		out += fmt.Sprintf(" (%.*f%%)", percentDecimals, pct)
	}
	return out
}
