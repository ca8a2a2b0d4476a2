package fetch

import (
	"fmt"
	"strings"
)

// Kind identifies how a source is retrieved.
type Kind int

const (
	KindGit Kind = iota
	KindTarGz
	KindZip
)

// Source is a parsed template location.
type Source struct {
	URL  string
	Ref  string // branch or tag for git sources; empty means the default branch
	Kind Kind
}

// ParseSource parses a template URL. A leading "direct:" marker is accepted
// and dropped; a "#ref" suffix selects a git branch or tag.
func ParseSource(raw string) (Source, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "direct:"))
	if s == "" {
		return Source{}, fmt.Errorf("%w: empty template URL", ErrDownload)
	}

	src := Source{URL: s}
	if i := strings.LastIndex(s, "#"); i >= 0 {
		src.URL, src.Ref = s[:i], s[i+1:]
	}
	if src.URL == "" {
		return Source{}, fmt.Errorf("%w: invalid template URL %q", ErrDownload, raw)
	}

	lower := strings.ToLower(src.URL)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		src.Kind = KindTarGz
	case strings.HasSuffix(lower, ".zip"):
		src.Kind = KindZip
	default:
		src.Kind = KindGit
	}
	return src, nil
}
