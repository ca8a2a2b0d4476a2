// Package shelltest provides a recording shell.Runner for tests.
package shelltest

import (
	"context"
	"strings"

	"github.com/dustess-fe/duero/internal/shell"
)

// Response is the canned result for a matched command.
type Response struct {
	Stdout string
	Err    error
}

// Recorder records every command and answers from canned responses keyed by
// command-line prefix ("git remote -v"). Unmatched commands succeed silently.
type Recorder struct {
	Calls     []shell.Command
	Responses map[string]Response

	// Hook, when set, runs for every command before the response lookup.
	Hook func(c shell.Command)
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{Responses: map[string]Response{}}
}

// On registers a response for commands whose line starts with prefix.
func (r *Recorder) On(prefix string, resp Response) *Recorder {
	r.Responses[prefix] = resp
	return r
}

// Run implements shell.Runner.
func (r *Recorder) Run(_ context.Context, c shell.Command) (*shell.Output, error) {
	r.Calls = append(r.Calls, c)
	if r.Hook != nil {
		r.Hook(c)
	}
	line := Line(c)
	best := ""
	for prefix := range r.Responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return &shell.Output{}, nil
	}
	resp := r.Responses[best]
	out := &shell.Output{Stdout: resp.Stdout}
	if resp.Err != nil {
		out.ExitCode = 1
	}
	return out, resp.Err
}

// Lines returns every recorded command line.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = Line(c)
	}
	return lines
}

// Count returns how many recorded lines start with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, l := range r.Lines() {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

// Line renders a command as "name arg1 arg2" without redaction.
func Line(c shell.Command) string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
