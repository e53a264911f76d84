package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ONSdigital/log.go/v2/log"
)

// Scanner finds cacheable asset files on disk.
type Scanner struct {
	filter *Filter
}

// New returns a scanner applying the provided filter to every candidate file.
func New(filter *Filter) *Scanner {
	return &Scanner{filter: filter}
}

// Scan walks each root in turn and returns every regular file whose extension
// is in extensions and whose path passes the filter. Extensions are matched
// case-sensitively and without a leading dot. Traversal order is the walker's
// lexical order per root and callers must not rely on it.
//
// A root that does not exist is skipped, so a purge never fails because an
// optional assets folder has not been generated yet. Any other walk error
// aborts the scan.
func (s *Scanner) Scan(ctx context.Context, roots, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = true
	}

	var paths []string
	for _, root := range roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			log.Warn(ctx, "skipping scan root that does not exist", log.Data{"root": root})
			continue
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !wanted[extension(path)] {
				return nil
			}
			if !s.filter.Accepts(path) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// extension returns the suffix after the final dot, without the dot.
func extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
