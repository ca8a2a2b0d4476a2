package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var (
	// ErrNoChoices is returned when a selection has nothing to offer.
	ErrNoChoices = errors.New("no choices available")

	// ErrAborted is returned when the operator cancels a prompt.
	ErrAborted = errors.New("prompt aborted")
)

// Prompter asks single questions.
type Prompter interface {
	// Select returns one of options; def is preselected.
	Select(title string, options []string, def string) (string, error)
	// Confirm returns a yes/no answer; def is preselected.
	Confirm(title string, def bool) (bool, error)
}

// New returns a Huh prompter when in and out are terminals, a Line prompter
// when plain is set, and Defaults otherwise.
func New(in, out *os.File, plain bool) Prompter {
	if plain {
		return NewLine(in, out)
	}
	if isTerminal(in) && isTerminal(out) {
		return &Huh{In: in, Out: out}
	}
	return Defaults{}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Huh prompts with charmbracelet/huh forms, one form per question.
type Huh struct {
	In  io.Reader
	Out io.Writer
}

// Select implements Prompter.
func (h *Huh) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	selected := pickDefault(options, def)
	sel := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&selected)
	if err := h.run(sel); err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm implements Prompter.
func (h *Huh) Confirm(title string, def bool) (bool, error) {
	value := def
	if err := h.run(huh.NewConfirm().Title(title).Value(&value)); err != nil {
		return false, err
	}
	return value, nil
}

func (h *Huh) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(false)
	if h.In != nil {
		form = form.WithInput(h.In)
	}
	if h.Out != nil {
		form = form.WithOutput(h.Out)
	}
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// Line prompts on a plain stream with numbered choices.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine returns a Line prompter reading r and writing w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Select implements Prompter. An empty answer picks def.
func (l *Line) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	def = pickDefault(options, def)
	defIdx := 1
	fmt.Fprintf(l.w, "\n%s\n", title)
	for i, opt := range options {
		if opt == def {
			defIdx = i + 1
		}
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(l.w, "Enter number [1-%d] (%d): ", len(options), defIdx)

	answer, err := l.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	num, err := strconv.Atoi(answer)
	if err != nil || num < 1 || num > len(options) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(options))
	}
	return options[num-1], nil
}

// Confirm implements Prompter. An empty answer picks def.
func (l *Line) Confirm(title string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(l.w, "%s [%s]: ", title, hint)

	answer, err := l.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid answer %q: expected y or n", answer)
}

func (l *Line) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Defaults answers every question with its default.
type Defaults struct{}

// Select implements Prompter.
func (Defaults) Select(_ string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	return pickDefault(options, def), nil
}

// Confirm implements Prompter.
func (Defaults) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// Canned replays scripted answers in order and falls back to defaults once
// they run out. Every title asked is recorded.
type Canned struct {
	Selects  []string
	Confirms []bool
	Asked    []string
}

// Select implements Prompter.
func (c *Canned) Select(title string, options []string, def string) (string, error) {
	c.Asked = append(c.Asked, title)
	if len(c.Selects) == 0 {
		return Defaults{}.Select(title, options, def)
	}
	answer := c.Selects[0]
	c.Selects = c.Selects[1:]
	return answer, nil
}

// Confirm implements Prompter.
func (c *Canned) Confirm(title string, def bool) (bool, error) {
	c.Asked = append(c.Asked, title)
	if len(c.Confirms) == 0 {
		return def, nil
	}
	answer := c.Confirms[0]
	c.Confirms = c.Confirms[1:]
	return answer, nil
}

// pickDefault returns def when it is one of options, else the first option.
func pickDefault(options []string, def string) string {
	for _, o := range options {
		if o == def {
			return def
		}
	}
	return options[0]
}
