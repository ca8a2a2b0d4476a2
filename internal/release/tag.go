package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrTagFormat is returned for tags that do not follow
// "<branch>[-<package>]-v<version>".
var ErrTagFormat = errors.New("invalid release tag")

// Tag is a parsed release tag.
type Tag struct {
	Name    string
	Branch  string
	Package string // empty for single-package repositories
	Version string // without the leading v
}

// MultiPackage reports whether the tag targets a named package.
func (t Tag) MultiPackage() bool {
	return t.Package != ""
}

// ParseTag splits a tag name on hyphens. The first segment is the branch,
// the last the version, and anything in between the package name.
func ParseTag(name string) (Tag, error) {
	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return Tag{}, fmt.Errorf("%w %q: expected <branch>-v<version>", ErrTagFormat, name)
	}
	for _, p := range parts {
		if p == "" {
			return Tag{}, fmt.Errorf("%w %q: empty segment", ErrTagFormat, name)
		}
	}

	raw := parts[len(parts)-1]
	version := strings.TrimPrefix(strings.TrimPrefix(raw, "v"), "V")
	if _, err := semver.StrictNewVersion(version); err != nil {
		return Tag{}, fmt.Errorf("%w %q: version %q: %v", ErrTagFormat, name, raw, err)
	}

	return Tag{
		Name:    name,
		Branch:  parts[0],
		Package: strings.Join(parts[1:len(parts)-1], "-"),
		Version: version,
	}, nil
}

// sameVersion compares versions semantically, falling back to string
// equality when either side is not semver.
func sameVersion(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equal(vb)
}
