package source

import (
	"fmt"

	"github.com/theirongolddev/fincalc/internal/model"
)

// Entry is one business as written in an input file. Nil fields were absent
// and get filled by the interactive validation pass.
type Entry struct {
	Name     *string
	Category *string // non-nil but empty means "use the default category"
	Income   PartialIncome
}

// PartialIncome holds the income figures present in an input file.
type PartialIncome struct {
	Operating *int64
	Gross     *int64
	Net       *int64
}

// Get returns the figure named by f, or nil when absent.
func (p PartialIncome) Get(f model.IncomeField) *int64 {
	switch f {
	case model.Operating:
		return p.Operating
	case model.Gross:
		return p.Gross
	default:
		return p.Net
	}
}

func (p *PartialIncome) set(f model.IncomeField, v int64) {
	switch f {
	case model.Operating:
		p.Operating = &v
	case model.Gross:
		p.Gross = &v
	default:
		p.Net = &v
	}
}

// Document is the parsed content of one input file.
type Document struct {
	// Thresholds is non-nil when the file overrides the threshold table.
	Thresholds *model.ThresholdTable
	Entries    []Entry
}

// LoadError reports a source that could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
