package prompt

import (
	"strings"

	"github.com/dustess-fe/duero/internal/registry"
)

// Translator renders a message key in the operator's language.
type Translator interface {
	Sprintf(key string, args ...any) string
}

// ChooseTemplate asks for a template among the registry entries, listed as
// "<id>: <remark>" in document order, and returns its id. The default is
// the base Vue template when present.
func ChooseTemplate(p Prompter, tr Translator, reg *registry.Registry) (string, error) {
	if len(reg.Templates) == 0 {
		return "", ErrNoChoices
	}
	labels := make([]string, len(reg.Templates))
	def := reg.Templates[0].Label()
	for i, t := range reg.Templates {
		labels[i] = t.Label()
		if t.ID == registry.DefaultTemplate {
			def = labels[i]
		}
	}
	answer, err := p.Select(tr.Sprintf("Choose a project template"), labels, def)
	if err != nil {
		return "", err
	}
	return idFromLabel(answer), nil
}

// ConfirmOverwrite asks whether an existing directory may be overwritten.
// Defaults to no.
func ConfirmOverwrite(p Prompter, tr Translator, name string) (bool, error) {
	return p.Confirm(tr.Sprintf("%s already exists. Continue and overwrite its contents?", name), false)
}

// ConfirmCI asks whether CI files should be installed. Defaults to yes.
func ConfirmCI(p Prompter, tr Translator) (bool, error) {
	return p.Confirm(tr.Sprintf("Install CI configuration files?"), true)
}

// CIChoice is the outcome of ChooseCI.
type CIChoice struct {
	Template string
	DirName  string
}

// ChooseCI asks for a CI template by description, then, when several
// templates share that description, for the template the project belongs to.
func ChooseCI(p Prompter, tr Translator, reg *registry.Registry) (CIChoice, error) {
	descriptions := reg.CIDescriptions()
	if len(descriptions) == 0 {
		return CIChoice{}, ErrNoChoices
	}
	desc, err := p.Select(tr.Sprintf("Choose a CI template"), descriptions, descriptions[0])
	if err != nil {
		return CIChoice{}, err
	}

	var matches []registry.Template
	for _, t := range reg.WithCI() {
		if t.CI.Description == desc {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return CIChoice{}, ErrNoChoices
	}

	chosen := matches[0]
	if len(matches) > 1 {
		labels := make([]string, len(matches))
		for i, t := range matches {
			labels[i] = t.Label()
		}
		answer, err := p.Select(tr.Sprintf("Which template does this project use?"), labels, labels[0])
		if err != nil {
			return CIChoice{}, err
		}
		for i, l := range labels {
			if l == answer {
				chosen = matches[i]
				break
			}
		}
	}
	return CIChoice{Template: chosen.ID, DirName: chosen.CIDir()}, nil
}

func idFromLabel(label string) string {
	id, _, _ := strings.Cut(label, ":")
	return strings.TrimSpace(id)
}
