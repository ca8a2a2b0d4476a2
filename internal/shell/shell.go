package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Command describes one external process invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
	Env  []string // appended to the current environment

	// Attach connects the process to the terminal instead of capturing output.
	Attach bool
}

// Cmd builds a Command running name with args in dir.
func Cmd(dir, name string, args ...string) Command {
	return Command{Dir: dir, Name: name, Args: args}
}

// Git builds a git Command running in dir.
func Git(dir string, args ...string) Command {
	return Cmd(dir, "git", args...)
}

// String renders the command line with credentials in URLs redacted.
func (c Command) String() string {
	return Redact(strings.Join(append([]string{c.Name}, c.Args...), " "))
}

// Output captures the result of a process.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, c Command) (*Output, error)
}

// ExitError reports a process that could not start or exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	if e.ExitCode < 0 {
		msg = fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive attached output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewExecRunner returns an ExecRunner logging to logger.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	return &ExecRunner{Logger: logger}
}

// Run executes c and waits for it. A non-zero exit yields *ExitError.
func (r *ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	if r.Logger != nil {
		r.Logger.Debug("exec", "cmd", c.String(), "dir", c.Dir)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	if c.Attach {
		cmd.Stdin = os.Stdin
		cmd.Stdout = orDefault(r.Stdout, os.Stdout)
		cmd.Stderr = orDefault(r.Stderr, os.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return out, nil
	}

	exitErr := &ExitError{Command: c.String(), ExitCode: -1, Stderr: Redact(out.Stderr), Err: err}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		exitErr.ExitCode = ee.ExitCode()
	}
	out.ExitCode = exitErr.ExitCode
	if r.Logger != nil {
		r.Logger.Debug("exec failed", "cmd", c.String(), "code", exitErr.ExitCode)
	}
	return out, exitErr
}

// RunAll runs commands in order and stops at the first failure.
func RunAll(ctx context.Context, r Runner, cmds ...Command) error {
	for _, c := range cmds {
		if _, err := r.Run(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// Available reports whether name resolves on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

var credentialPattern = regexp.MustCompile(`(://)[^/@\s]+@`)

// Redact masks user-info credentials embedded in URLs.
func Redact(s string) string {
	return credentialPattern.ReplaceAllString(s, "${1}***@")
}

func orDefault(w, def io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return def
}
