package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	accentColor  = color.New(color.FgYellow)
)

// Console writes translated, colored messages to a single writer.
// Message keys are English format strings; see messages.go for translations.
type Console struct {
	out     io.Writer
	printer *message.Printer
}

// New creates a Console printing to out in the given language.
func New(out io.Writer, lang language.Tag) *Console {
	return &Console{out: out, printer: message.NewPrinter(lang)}
}

// Sprintf translates and formats a message without printing it.
func (c *Console) Sprintf(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Info prints an uncolored message.
func (c *Console) Info(key string, args ...any) {
	fmt.Fprintln(c.out, c.Sprintf(key, args...))
}

// Success prints a message in bold green.
func (c *Console) Success(key string, args ...any) {
	successColor.Fprintln(c.out, c.Sprintf(key, args...))
}

// Warn prints a message in yellow.
func (c *Console) Warn(key string, args ...any) {
	warnColor.Fprintln(c.out, c.Sprintf(key, args...))
}

// Fail prints a message in red, followed by err when it is non-nil.
func (c *Console) Fail(err error, key string, args ...any) {
	failColor.Fprintln(c.out, c.Sprintf(key, args...))
	if err != nil {
		fmt.Fprintf(c.out, "  %v\n", err)
	}
}

// Accent highlights a value inside a message, e.g. a project name.
func Accent(s string) string {
	return accentColor.Sprint(s)
}

// Step reports the start and outcome of a long-running operation.
type Step struct {
	c     *Console
	label string
}

// Begin prints the start line of a step and returns it.
func (c *Console) Begin(key string, args ...any) *Step {
	s := &Step{c: c, label: c.Sprintf(key, args...)}
	fmt.Fprintf(c.out, "… %s\n", s.label)
	return s
}

// Done marks the step as successful.
func (s *Step) Done() {
	successColor.Fprintf(s.c.out, "✔ %s %s\n", s.label, s.c.Sprintf("succeeded"))
}

// Failed marks the step as failed.
func (s *Step) Failed() {
	failColor.Fprintf(s.c.out, "✖ %s %s\n", s.label, s.c.Sprintf("failed"))
}

// End closes the step according to err and returns err unchanged.
func (s *Step) End(err error) error {
	if err != nil {
		s.Failed()
	} else {
		s.Done()
	}
	return err
}

// NewLogger returns a text slog logger on w. Debug records are only emitted
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
