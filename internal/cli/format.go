// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatThreshold prints a threshold in its shortest form.
// e.g., 1.75 -> "1.75", 2 -> "2"
func FormatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent formats a percentage value with the given decimals.
// e.g., FormatPercent(12.345, 1) -> "12.3%"
func FormatPercent(pct float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, pct)
}

// ParseFloats parses every argument as a float.
func ParseFloats(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		values = append(values, v)
	}
	return values, nil
}
