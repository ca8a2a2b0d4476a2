package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustess-fe/duero/internal/registry"
)

// nginx location bodies injected into docker/nginx.test.conf.
const (
	spaLocation = `root /app;
            index index.html;
            try_files $uri $uri/ /index.html;`

	microLocation = `# allow cross-origin loading by the host application
            add_header Access-Control-Allow-Origin *;
            add_header Access-Control-Allow-Headers X-Requested-With;
            add_header Access-Control-Allow-Methods GET,POST,OPTIONS;
            add_header Cache-Control no-cache;
            add_header Pragma no-cache;
            add_header Expires 0;
            root /app;
            # index index.html;
            # try_files $uri /index.html;`
)

// DockerLocationConfig returns the nginx location body for a template.
func DockerLocationConfig(templateID string) string {
	switch templateID {
	case registry.DefaultTemplate:
		return spaLocation
	case registry.TemplateMicro:
		return microLocation
	}
	return ""
}

// CIJobs returns the placeholder substitutions for rendered CI files.
func CIJobs(targetDir, templateID, projectName string) []Job {
	at := func(rel string) string { return filepath.Join(targetDir, filepath.FromSlash(rel)) }
	named := map[string]string{"projectName": projectName}
	return []Job{
		{Path: at(".gitlab-ci.yml"), Values: named},
		{Path: at("Makefile"), Values: named},
		{Path: at("Dockerfile"), Values: map[string]string{"projectName": MidName(projectName)}},
		{Path: at("docker/nginx.test.conf"), Values: map[string]string{"dockerLocationConfig": DockerLocationConfig(templateID)}},
	}
}

// RenderCI copies <ciTemplateDir>/src/<ciDirName> into targetDir and
// substitutes the project placeholders. Files already copied stay in place
// when a later step fails.
func RenderCI(ciTemplateDir, templateID, targetDir, projectName, ciDirName string) error {
	src := filepath.Join(ciTemplateDir, "src", ciDirName)
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: CI template directory %s", ErrMissingFile, src)
	}
	if err := copyTree(src, targetDir); err != nil {
		return fmt.Errorf("copying CI template: %w", err)
	}
	return Apply(CIJobs(targetDir, templateID, projectName))
}
