package release

import (
	"errors"
	"strings"
)

// ErrNoTagger is returned when tag output carries no tagger, which is the
// case for lightweight tags.
var ErrNoTagger = errors.New("tag has no tagger")

// Tagger identifies who created an annotated tag and why.
type Tagger struct {
	Name    string
	Email   string
	Message string
}

// ParseTagger reads the output of `git show <tag> -s --format=`.
func ParseTagger(out string) (Tagger, error) {
	lines := strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")

	var t Tagger
	found := false
	body := -1
	for i, line := range lines {
		if !found {
			rest, ok := strings.CutPrefix(line, "Tagger:")
			if !ok {
				continue
			}
			found = true
			name, email, _ := strings.Cut(rest, "<")
			t.Name = strings.TrimSpace(name)
			t.Email = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(email), ">"))
			continue
		}
		if strings.TrimSpace(line) == "" {
			body = i + 1
			break
		}
	}
	if !found || t.Name == "" {
		return Tagger{}, ErrNoTagger
	}
	if body >= 0 && body < len(lines) {
		t.Message = strings.TrimSpace(strings.Join(lines[body:], "\n"))
	}
	return t, nil
}
