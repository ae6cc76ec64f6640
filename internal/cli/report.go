package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fincalc/internal/model"
)

// Rule separates report sections.
var Rule = strings.Repeat("-", 15)

// Emphasizer makes text stand out, typically bold on a terminal.
type Emphasizer interface {
	MakeBold(text string) string
}

// RenderThresholds lists the threshold table in ascending threshold order
// with category names right-aligned.
func RenderThresholds(table model.ThresholdTable) string {
	var b strings.Builder
	b.WriteString("Business types and thresholds\n")

	align := 0
	for _, c := range table.Categories() {
		if len(c) > align {
			align = len(c)
		}
	}
	align += 2

	for _, th := range table.SortedByValue() {
		fmt.Fprintf(&b, "%*s: %s\n", align, th.Category, FormatThreshold(th.Min))
	}
	return b.String()
}

// RenderBusiness renders the header line and aligned income figures of one
// business.
func RenderBusiness(rec model.BusinessRecord, e Emphasizer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "business: %s category: %s with income\n",
		e.MakeBold(rec.Name), e.MakeBold(string(rec.Category)))

	align := 0
	for _, f := range model.IncomeFields {
		if n := len(f.String()); n > align {
			align = n
		}
	}
	align += 2

	for _, f := range model.IncomeFields {
		fmt.Fprintf(&b, "%*s: %d\n", align, f, rec.Income.Get(f))
	}
	return b.String()
}
