// Package search locates files by name in a project tree.
package search

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dustess-fe/duero/internal/manifest"
)

// DefaultExclude is the directory name skipped unless overridden.
const DefaultExclude = "node_modules"

// ErrNotFound reports that no matching file exists.
var ErrNotFound = errors.New("file not found")

type options struct {
	exclude map[string]bool
}

// Option configures a search.
type Option func(*options)

// Exclude replaces the excluded directory names. Passing no names disables
// exclusion.
func Exclude(names ...string) Option {
	return func(o *options) {
		o.exclude = make(map[string]bool, len(names))
		for _, n := range names {
			o.exclude[n] = true
		}
	}
}

// Files returns every path under root whose base name equals fileName, in
// lexical walk order. Excluded directories are not descended into.
func Files(root, fileName string, opts ...Option) ([]string, error) {
	o := options{exclude: map[string]bool{DefaultExclude: true}}
	for _, opt := range opts {
		opt(&o)
	}

	matches := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if path != root && o.exclude[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == fileName {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", root, err)
	}
	return matches, nil
}

// Package returns the package.json under root whose name field equals name.
func Package(root, name string) (string, error) {
	paths, err := Files(root, manifest.FileName)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		pkg, err := manifest.Read(p)
		if err != nil {
			continue
		}
		if pkg.Name == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: no %s named %q under %s", ErrNotFound, manifest.FileName, name, root)
}
