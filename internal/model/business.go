package model

import "fmt"

// IncomeField names one of the three income figures of a business.
type IncomeField int

const (
	Operating IncomeField = iota
	Gross
	Net
)

// IncomeFields lists the income figures in report order.
var IncomeFields = []IncomeField{Operating, Gross, Net}

// String returns the lowercase key used in input files.
func (f IncomeField) String() string {
	switch f {
	case Operating:
		return "operating"
	case Gross:
		return "gross"
	case Net:
		return "net"
	default:
		return fmt.Sprintf("IncomeField(%d)", int(f))
	}
}

// Income holds the operating, gross and net income of a business.
type Income struct {
	Operating int64
	Gross     int64
	Net       int64
}

// Get returns the figure named by f.
func (in Income) Get(f IncomeField) int64 {
	switch f {
	case Operating:
		return in.Operating
	case Gross:
		return in.Gross
	default:
		return in.Net
	}
}

// Set returns a copy of in with the figure named by f replaced.
func (in Income) Set(f IncomeField, v int64) Income {
	switch f {
	case Operating:
		in.Operating = v
	case Gross:
		in.Gross = v
	default:
		in.Net = v
	}
	return in
}

// BusinessRecord is one fully validated business.
type BusinessRecord struct {
	Name     string
	Category Category
	Income   Income
}
