package registry

// Well-known template ids that change how a project is rendered.
const (
	DefaultTemplate      = "vue-cli-base"
	TemplateMicro        = "vue-cli-base-micro"
	TemplateBizComponent = "vue-cli-base-biz-component"
	TemplatePluginBase   = "vue-cli-plugin-base"
	TemplateUni          = "vue-cli-base-uni"
)

// CI describes the CI template directory associated with a template.
type CI struct {
	DirName     string `json:"dirName"`
	Description string `json:"ciDes"`
}

// Template is one registry entry.
type Template struct {
	ID               string `json:"-"`
	URL              string `json:"url"`
	Remark           string `json:"remark"`
	NoGitInitAndYarn bool   `json:"noGitInitAndYarn"`
	NeedInquirerCI   bool   `json:"needInquirerCI"`
	CI               *CI    `json:"ci,omitempty"`
}

// Label is the prompt text for the template, "<id>: <remark>".
func (t Template) Label() string {
	return t.ID + ": " + t.Remark
}

// CIDir returns the CI directory name, or "" when none is configured.
func (t Template) CIDir() string {
	if t.CI == nil {
		return ""
	}
	return t.CI.DirName
}

// Registry is the ordered set of templates from one registry document.
type Registry struct {
	Templates []Template
}

// Lookup returns the template with the given id.
func (r *Registry) Lookup(id string) (Template, bool) {
	for _, t := range r.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// WithCI returns the templates that have a CI directory, in document order.
func (r *Registry) WithCI() []Template {
	var out []Template
	for _, t := range r.Templates {
		if t.CIDir() != "" {
			out = append(out, t)
		}
	}
	return out
}

// CIDescriptions returns the distinct CI descriptions in first-seen order.
func (r *Registry) CIDescriptions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range r.WithCI() {
		d := t.CI.Description
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
