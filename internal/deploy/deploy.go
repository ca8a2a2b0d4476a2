// Package deploy rewrites Kubernetes deployment manifests in a project tree
// with the standard front-end Deployment and Service definition.
package deploy

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustess-fe/duero/internal/search"
)

// ManifestFile is the only file name Update accepts.
const ManifestFile = "manifest.yaml"

//go:embed manifest.yaml
var manifestTemplate []byte

var (
	// ErrUnsupported is returned for file names Update cannot rewrite.
	ErrUnsupported = errors.New("unsupported file")

	// ErrNoMatch is returned when no file with the requested name exists.
	ErrNoMatch = errors.New("no matching file")
)

// Supported lists the file names Update can rewrite.
func Supported() []string {
	return []string{ManifestFile}
}

// Template returns the manifest text written by Update. The !PROJECT_NAME,
// !IMAGE_TAG and !DOCKER_IMAGE_NAME markers are filled in by the CI pipeline.
func Template() []byte {
	return append([]byte(nil), manifestTemplate...)
}

// Update overwrites fileName in dir, or every fileName below dir when deep
// is set, and returns the rewritten paths.
func Update(dir, fileName string, deep bool) ([]string, error) {
	if fileName != ManifestFile {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, fileName)
	}

	var matches []string
	if deep {
		found, err := search.Files(dir, fileName)
		if err != nil {
			return nil, err
		}
		matches = found
	} else {
		path := filepath.Join(dir, fileName)
		if _, err := os.Stat(path); err == nil {
			matches = []string{path}
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, fileName)
	}

	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}
		if err := os.WriteFile(path, manifestTemplate, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return matches, nil
}
