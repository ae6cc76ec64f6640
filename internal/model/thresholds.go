// Package model defines the business records and category thresholds shared
// by the loader, the ratio engine and the report renderer.
package model

import (
	"errors"
	"sort"
)

// Category is a business category such as "railroad".
type Category string

// Built-in categories.
const (
	PublicUtility Category = "public-utility"
	Railroad      Category = "railroad"
	Industrial    Category = "industrial"
)

// DefaultCategory is used when a record carries an empty category.
const DefaultCategory = Industrial

// ErrUnsupportedCategory reports a category missing from the threshold table.
var ErrUnsupportedCategory = errors.New("unsupported business category")

// Threshold is the minimum acceptable coverage ratio for a category.
type Threshold struct {
	Category Category
	Min      float64
}

// ThresholdTable maps categories to minimum ratios, keeping insertion order.
// The zero value is an empty table. Tables are never mutated after
// construction; use NewThresholdTable to build a replacement.
type ThresholdTable struct {
	entries []Threshold
}

// DefaultThresholds returns the built-in table.
func DefaultThresholds() ThresholdTable {
	return NewThresholdTable(
		Threshold{PublicUtility, 1.75},
		Threshold{Railroad, 2},
		Threshold{Industrial, 3},
	)
}

// NewThresholdTable builds a table. A repeated category keeps its first
// position and takes the last value.
func NewThresholdTable(entries ...Threshold) ThresholdTable {
	t := ThresholdTable{entries: make([]Threshold, 0, len(entries))}
	for _, e := range entries {
		if i := t.index(e.Category); i >= 0 {
			t.entries[i].Min = e.Min
			continue
		}
		t.entries = append(t.entries, e)
	}
	return t
}

func (t ThresholdTable) index(c Category) int {
	for i, e := range t.entries {
		if e.Category == c {
			return i
		}
	}
	return -1
}

// Len returns the number of categories.
func (t ThresholdTable) Len() int { return len(t.entries) }

// Has reports whether c is a key of the table.
func (t ThresholdTable) Has(c Category) bool { return t.index(c) >= 0 }

// Lookup returns the minimum ratio for c.
func (t ThresholdTable) Lookup(c Category) (float64, bool) {
	if i := t.index(c); i >= 0 {
		return t.entries[i].Min, true
	}
	return 0, false
}

// Resolve maps an empty category to DefaultCategory and returns the
// category together with its threshold.
func (t ThresholdTable) Resolve(c Category) (Category, float64, error) {
	if c == "" {
		c = DefaultCategory
	}
	v, ok := t.Lookup(c)
	if !ok {
		return c, 0, ErrUnsupportedCategory
	}
	return c, v, nil
}

// Categories returns the categories in insertion order.
func (t ThresholdTable) Categories() []Category {
	out := make([]Category, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Category
	}
	return out
}

// Entries returns a copy of the table in insertion order.
func (t ThresholdTable) Entries() []Threshold {
	out := make([]Threshold, len(t.entries))
	copy(out, t.entries)
	return out
}

// SortedByValue returns the entries sorted by ascending threshold.
// Equal thresholds keep insertion order.
func (t ThresholdTable) SortedByValue() []Threshold {
	out := t.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Min < out[j].Min
	})
	return out
}
