// Package pipeline turns input files into validated business records.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fincalc/internal/model"
	"github.com/theirongolddev/fincalc/internal/source"

	"go.uber.org/zap"
)

// Prompter fills fields missing from input files.
type Prompter interface {
	Name() (string, error)
	Category(categories []model.Category) (model.Category, error)
	Income(field model.IncomeField) (int64, error)
}

// ConfigError reports a business whose category is not in the threshold
// table. It is fatal for the whole run.
type ConfigError struct {
	Business string
	Category model.Category
	Err      error
}

func (e *ConfigError) Error() string {
	name := e.Business
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("business %s: %v %q", name, e.Err, e.Category)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LoadResult holds the validated records and the threshold table they were
// validated against.
type LoadResult struct {
	Records    []model.BusinessRecord
	Thresholds model.ThresholdTable
	TotalFiles int
	Overridden bool // an input file replaced the threshold table
	Prompted   int  // number of fields filled interactively
}

// ProgressFunc is called after each source is parsed.
// current is the number of files parsed so far, total is the total count.
type ProgressFunc func(current, total int)

// Loader reads input files and fills missing fields through Prompter.
type Loader struct {
	Thresholds model.ThresholdTable
	Prompter   Prompter
	Logger     *zap.Logger
	Progress   ProgressFunc
}

// Load parses paths in order and validates the merged records. Each
// thresholds block replaces the table entirely; the last one wins. With no
// paths, or no entries at all, a single empty record is prompted for.
func (l *Loader) Load(paths []string) (*LoadResult, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := source.ScanPaths(paths)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{
		Thresholds: l.Thresholds,
		TotalFiles: len(files),
	}

	var entries []source.Entry
	for i, path := range files {
		doc, err := source.ParseFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsed input file",
			zap.String("path", path),
			zap.Int("businesses", len(doc.Entries)),
		)
		if doc.Thresholds != nil {
			result.Thresholds = *doc.Thresholds
			result.Overridden = true
			logger.Info("threshold table replaced",
				zap.String("path", path),
				zap.Int("categories", doc.Thresholds.Len()),
			)
		}
		entries = append(entries, doc.Entries...)
		if l.Progress != nil {
			l.Progress(i+1, len(files))
		}
	}

	if len(entries) == 0 {
		entries = append(entries, source.Entry{})
	}

	if err := checkCategories(entries, result.Thresholds); err != nil {
		return nil, err
	}

	records, prompted, err := l.validate(entries, result.Thresholds, logger)
	if err != nil {
		return nil, err
	}
	result.Records = records
	result.Prompted = prompted
	return result, nil
}

// checkCategories rejects unsupported categories before anything is prompted.
func checkCategories(entries []source.Entry, table model.ThresholdTable) error {
	for _, e := range entries {
		if e.Category == nil {
			continue
		}
		if _, _, err := table.Resolve(model.Category(*e.Category)); err != nil {
			name := ""
			if e.Name != nil {
				name = *e.Name
			}
			c := model.Category(*e.Category)
			if c == "" {
				c = model.DefaultCategory
			}
			return &ConfigError{Business: name, Category: c, Err: err}
		}
	}
	return nil
}

func (l *Loader) validate(entries []source.Entry, table model.ThresholdTable, logger *zap.Logger) ([]model.BusinessRecord, int, error) {
	if l.Prompter == nil {
		for _, e := range entries {
			if !complete(e) {
				return nil, 0, errors.New("business data incomplete and no prompter configured")
			}
		}
	}

	records := make([]model.BusinessRecord, 0, len(entries))
	prompted := 0
	for i, e := range entries {
		logger.Debug("validating business", zap.Int("index", i))

		var rec model.BusinessRecord
		if e.Name != nil {
			rec.Name = *e.Name
		} else {
			name, err := l.Prompter.Name()
			if err != nil {
				return nil, prompted, fmt.Errorf("business %d name: %w", i+1, err)
			}
			rec.Name = name
			prompted++
		}

		if e.Category != nil {
			c, _, err := table.Resolve(model.Category(*e.Category))
			if err != nil {
				return nil, prompted, &ConfigError{Business: rec.Name, Category: c, Err: err}
			}
			rec.Category = c
		} else {
			c, err := l.Prompter.Category(table.Categories())
			if err != nil {
				return nil, prompted, fmt.Errorf("business %q category: %w", rec.Name, err)
			}
			if !table.Has(c) {
				return nil, prompted, &ConfigError{Business: rec.Name, Category: c, Err: model.ErrUnsupportedCategory}
			}
			rec.Category = c
			prompted++
		}

		for _, f := range model.IncomeFields {
			if v := e.Income.Get(f); v != nil {
				rec.Income = rec.Income.Set(f, *v)
				continue
			}
			v, err := l.Prompter.Income(f)
			if err != nil {
				return nil, prompted, fmt.Errorf("business %q %s income: %w", rec.Name, f, err)
			}
			rec.Income = rec.Income.Set(f, v)
			prompted++
		}

		logger.Debug("business validated",
			zap.String("name", rec.Name),
			zap.String("category", string(rec.Category)),
		)
		records = append(records, rec)
	}
	return records, prompted, nil
}

func complete(e source.Entry) bool {
	if e.Name == nil || e.Category == nil {
		return false
	}
	for _, f := range model.IncomeFields {
		if e.Income.Get(f) == nil {
			return false
		}
	}
	return true
}

// ResolveThresholds returns the threshold table that Load would validate
// against, without reading any business entries or prompting. overridden
// reports whether an input file replaced base.
func ResolveThresholds(paths []string, base model.ThresholdTable) (table model.ThresholdTable, overridden bool, err error) {
	files, err := source.ScanPaths(paths)
	if err != nil {
		return base, false, err
	}
	table = base
	for _, path := range files {
		doc, err := source.ParseFile(path)
		if err != nil {
			return base, false, err
		}
		if doc.Thresholds != nil {
			table = *doc.Thresholds
			overridden = true
		}
	}
	return table, overridden, nil
}
