package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

// ErrMissingFile is returned when a substitution target does not exist.
var ErrMissingFile = errors.New("file not found")

const (
	startTag = "{{"
	endTag   = "}}"
)

// Render replaces every {{key}} in content with values[key]. Whitespace
// inside the braces is ignored. Tokens without a value are left as written.
func Render(content string, values map[string]string) (string, error) {
	return fasttemplate.ExecuteFuncStringWithErr(content, startTag, endTag, func(w io.Writer, tag string) (int, error) {
		if v, ok := values[strings.TrimSpace(tag)]; ok {
			return w.Write([]byte(v))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

// Job is one file to render in place.
type Job struct {
	Path   string
	Values map[string]string
}

// Apply renders every job. A failed job does not stop the others; the
// errors of all failed jobs are joined.
func Apply(jobs []Job) error {
	var errs []error
	for _, j := range jobs {
		if err := applyJob(j); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func applyJob(j Job) error {
	info, err := os.Stat(j.Path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrMissingFile, j.Path)
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", j.Path, err)
	}

	data, err := os.ReadFile(j.Path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", j.Path, err)
	}
	out, err := Render(string(data), j.Values)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", j.Path, err)
	}
	if err := os.WriteFile(j.Path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", j.Path, err)
	}
	return nil
}
