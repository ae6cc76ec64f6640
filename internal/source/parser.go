// Package source parses business input files.
//
// A file holds either a bare YAML list of businesses, or a mapping with an
// optional "thresholds" block (category -> minimum ratio) and an optional
// "businesses" list:
//
//	thresholds:
//	  railroad: 2.5
//	businesses:
//	  - name: Acme
//	    type: railroad
//	    income: {operating: 400, gross: 300, net: 100}
package source

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/fincalc/internal/model"

	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses one input file.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &LoadError{Path: path, Err: err}
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Document{}, &LoadError{Path: path, Err: err}
	}
	return doc, nil
}

// ParseDocument parses the YAML content of one input file. An empty
// document yields no entries.
func ParseDocument(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Document{}, nil
	}

	node := deref(root.Content[0])
	switch node.Kind {
	case yaml.SequenceNode:
		entries, err := parseEntries(node)
		return Document{Entries: entries}, err
	case yaml.MappingNode:
		return parseObject(node)
	case yaml.ScalarNode:
		if isNull(node) {
			return Document{}, nil
		}
	}
	return Document{}, fmt.Errorf("line %d: expected a list of businesses or a mapping", node.Line)
}

func parseObject(node *yaml.Node) (Document, error) {
	pairs, err := mappingPairs(node)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	for _, p := range pairs {
		key, val := p.key, p.val
		switch key.Value {
		case "thresholds":
			if isNull(val) {
				continue
			}
			table, err := parseThresholds(val)
			if err != nil {
				return Document{}, err
			}
			doc.Thresholds = &table
		case "businesses":
			if isNull(val) {
				continue
			}
			if val.Kind != yaml.SequenceNode {
				return Document{}, fmt.Errorf("line %d: businesses must be a list", val.Line)
			}
			entries, err := parseEntries(val)
			if err != nil {
				return Document{}, err
			}
			doc.Entries = entries
		}
	}
	return doc, nil
}

// parseThresholds keeps the file's key order; it drives the category menu.
func parseThresholds(node *yaml.Node) (model.ThresholdTable, error) {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return model.ThresholdTable{}, fmt.Errorf("line %d: thresholds must be a mapping", node.Line)
	}
	pairs, err := mappingPairs(node)
	if err != nil {
		return model.ThresholdTable{}, err
	}
	entries := make([]model.Threshold, 0, len(pairs))
	for _, p := range pairs {
		v, err := thresholdValue(p.val)
		if err != nil {
			return model.ThresholdTable{}, fmt.Errorf("line %d: threshold %q is not a number", p.val.Line, p.key.Value)
		}
		entries = append(entries, model.Threshold{Category: model.Category(p.key.Value), Min: v})
	}
	return model.NewThresholdTable(entries...), nil
}

// thresholdValue accepts numbers and numeric strings such as "2.5".
func thresholdValue(node *yaml.Node) (float64, error) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str" {
		return strconv.ParseFloat(strings.TrimSpace(node.Value), 64)
	}
	var v float64
	err := node.Decode(&v)
	return v, err
}

func parseEntries(node *yaml.Node) ([]Entry, error) {
	entries := make([]Entry, 0, len(node.Content))
	for _, item := range node.Content {
		e, err := parseEntry(deref(item))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseEntry(node *yaml.Node) (Entry, error) {
	var e Entry
	if isNull(node) {
		return e, nil
	}
	if node.Kind != yaml.MappingNode {
		return e, fmt.Errorf("line %d: business entry must be a mapping", node.Line)
	}
	pairs, err := mappingPairs(node)
	if err != nil {
		return e, err
	}

	for _, p := range pairs {
		key, val := p.key, p.val
		switch key.Value {
		case "name":
			s, err := scalarString(val)
			if err != nil {
				return e, err
			}
			e.Name = &s
		case "type":
			s, err := scalarString(val)
			if err != nil {
				return e, err
			}
			e.Category = &s
		case "income":
			in, err := parseIncome(val)
			if err != nil {
				return e, err
			}
			e.Income = in
		}
	}
	return e, nil
}

func parseIncome(node *yaml.Node) (PartialIncome, error) {
	var in PartialIncome
	if isNull(node) {
		return in, nil
	}
	if node.Kind != yaml.MappingNode {
		return in, fmt.Errorf("line %d: income must be a mapping", node.Line)
	}
	pairs, err := mappingPairs(node)
	if err != nil {
		return in, err
	}

	for _, p := range pairs {
		key, val := p.key, p.val
		for _, f := range model.IncomeFields {
			if key.Value != f.String() || isNull(val) {
				continue
			}
			var v int64
			if val.ShortTag() != "!!int" {
				return in, fmt.Errorf("line %d: %s income %q is not an integer", val.Line, f, val.Value)
			}
			if err := val.Decode(&v); err != nil {
				return in, fmt.Errorf("line %d: %s income %q is not an integer", val.Line, f, val.Value)
			}
			in.set(f, v)
		}
	}
	return in, nil
}

// scalarString returns "" for null so that "type:" means the default category.
func scalarString(node *yaml.Node) (string, error) {
	node = deref(node)
	if isNull(node) {
		return "", nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a string", node.Line)
	}
	return node.Value, nil
}

type pair struct {
	key, val *yaml.Node
}

// mappingPairs returns the key/value pairs of a mapping with aliases
// resolved and "<<" merge keys expanded. Explicit keys win over merged ones,
// and earlier merge sources win over later ones.
func mappingPairs(node *yaml.Node) ([]pair, error) {
	var explicit, merged []pair
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := deref(node.Content[i]), deref(node.Content[i+1])
		if !isMerge(key) {
			explicit = append(explicit, pair{key, val})
			continue
		}

		sources := []*yaml.Node{val}
		if val.Kind == yaml.SequenceNode {
			sources = val.Content
		}
		for _, src := range sources {
			src = deref(src)
			if src.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge value must be a mapping", src.Line)
			}
			inner, err := mappingPairs(src)
			if err != nil {
				return nil, err
			}
			merged = append(merged, inner...)
		}
	}

	seen := make(map[string]bool, len(explicit)+len(merged))
	out := make([]pair, 0, len(explicit)+len(merged))
	for _, p := range explicit {
		seen[p.key.Value] = true
		out = append(out, p)
	}
	for _, p := range merged {
		if !seen[p.key.Value] {
			seen[p.key.Value] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func isMerge(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Value == "<<" &&
		(node.Tag == "" || node.Tag == "!" || node.ShortTag() == "!!merge")
}

// deref follows aliases to the anchored node.
func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	node = deref(node)
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// IsLoadError reports whether err came from reading or parsing a source.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
