package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanPaths expands the command-line paths into input files. Files are kept
// as given, in order; a directory contributes its *.yaml and *.yml files in
// lexical order. Subdirectories are not descended into.
func ScanPaths(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &LoadError{Path: p, Err: err}
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, &LoadError{Path: p, Err: err}
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() || !isYAML(e.Name()) {
				continue
			}
			found = append(found, filepath.Join(p, e.Name()))
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
