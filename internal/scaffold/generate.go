package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dustess-fe/duero/internal/manifest"
	"github.com/dustess-fe/duero/internal/registry"
)

// pluginPrefix marks Vue CLI plugin package names.
const pluginPrefix = "vue-cli-plugin-"

var midNamePattern = regexp.MustCompile(`^qw-manage-(.*)-client$`)

// MidName extracts the middle segment of a "qw-manage-<x>-client" project
// name. Other names are returned unchanged.
func MidName(name string) string {
	if m := midNamePattern.FindStringSubmatch(name); m != nil && m[1] != "" {
		return m[1]
	}
	return name
}

// PackageName returns the package name for a new project. Plugin templates
// get the "vue-cli-plugin-" prefix unless the name already contains it.
func PackageName(templateID, projectName string) string {
	if templateID == registry.TemplatePluginBase && !strings.Contains(projectName, pluginPrefix) {
		return pluginPrefix + projectName
	}
	return projectName
}

// ProjectJobs returns the placeholder substitutions for a freshly copied
// template.
func ProjectJobs(projectDir, templateID, projectName string) []Job {
	named := map[string]string{"projectName": projectName}
	at := func(rel string) string { return filepath.Join(projectDir, filepath.FromSlash(rel)) }

	jobs := []Job{{Path: at("README.md"), Values: named}}
	switch templateID {
	case registry.TemplateMicro:
		jobs = append(jobs, Job{Path: at("vue.config.js"), Values: map[string]string{"projectName": MidName(projectName)}})
	case registry.TemplateBizComponent:
		for _, rel := range []string{"vant.config.js", "package.json", "src/demo-button/README.md", "docs/quickstart.md"} {
			jobs = append(jobs, Job{Path: at(rel), Values: named})
		}
	}
	return jobs
}

// Generate renders the template in templateDir into projectDir, which is
// emptied first.
func Generate(templateDir, templateID, projectDir, projectName string) error {
	if err := emptyDir(projectDir); err != nil {
		return fmt.Errorf("preparing %s: %w", projectDir, err)
	}
	if err := copyTree(templateDir, projectDir); err != nil {
		return fmt.Errorf("copying template: %w", err)
	}

	path, err := manifest.EnsureFile(projectDir)
	if err != nil {
		return err
	}
	pkg, err := manifest.Read(path)
	if err != nil {
		return err
	}
	if err := pkg.SetName(PackageName(templateID, projectName)); err != nil {
		return err
	}
	if err := pkg.Write(manifest.IndentTab); err != nil {
		return err
	}

	return Apply(ProjectJobs(projectDir, templateID, projectName))
}
