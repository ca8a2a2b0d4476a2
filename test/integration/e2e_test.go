//go:build integration

package integration_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dustess-fe/duero/internal/deploy"
	"github.com/dustess-fe/duero/internal/manifest"
	"github.com/dustess-fe/duero/internal/prompt"
	"github.com/dustess-fe/duero/internal/scaffold"
)

func registryDoc(templateURL string) string {
	return `{
  "vue-cli-base-micro": {
    "url": "` + templateURL + `",
    "remark": "Micro front-end",
    "noGitInitAndYarn": false,
    "needInquirerCI": true,
    "ci": { "dirName": "vue-micro", "ciDes": "spa" }
  },
  "vue-cli-base": {
    "url": "` + templateURL + `",
    "remark": "Vue SPA",
    "noGitInitAndYarn": false,
    "ci": { "dirName": "vue-spa", "ciDes": "spa" }
  }
}`
}

// TestCreateFromGitTemplates runs the whole create flow against local git
// repositories: clone, render, CI, git init with the standard branches.
func TestCreateFromGitTemplates(t *testing.T) {
	env := setupTestEnv(t)
	templateURL := setupTemplateRepo(t, env)
	ciURL := setupCIRepo(t, env)
	registryURL := serveRegistry(t, registryDoc(templateURL))

	canned := &prompt.Canned{Confirms: []bool{true}}
	c := newCreator(env, registryURL, ciURL, canned)

	err := c.Create(context.Background(), scaffold.CreateOptions{
		Name:     "qw-manage-shop-client",
		Template: "vue-cli-base-micro",
		NoYarn:   true,
		Dir:      env.ProjectDir,
	})
	if err != nil {
		t.Fatalf("Create: %v\n%s", err, env.Output)
	}

	project := filepath.Join(env.ProjectDir, "qw-manage-shop-client")

	assertFileContains(t, filepath.Join(project, "README.md"), "# qw-manage-shop-client")
	assertFileContains(t, filepath.Join(project, "vue.config.js"), "name: 'shop'")
	assertFileContains(t, filepath.Join(project, "Dockerfile"), "LABEL app=shop")
	assertFileContains(t, filepath.Join(project, ".gitlab-ci.yml"), "PROJECT: qw-manage-shop-client")
	assertFileContains(t, filepath.Join(project, "docker", "nginx.test.conf"), "Access-Control-Allow-Origin")
	assertFileNotExists(t, filepath.Join(project, ".git", "shallow"))

	pkg, err := manifest.ReadDir(project)
	if err != nil {
		t.Fatalf("reading package.json: %v", err)
	}
	if pkg.Name != "qw-manage-shop-client" {
		t.Errorf("package name = %q, want qw-manage-shop-client", pkg.Name)
	}
	if pkg.Version != "0.1.0" {
		t.Errorf("package version = %q, want 0.1.0", pkg.Version)
	}

	branches := git(t, project, "branch", "--format=%(refname:short)")
	for _, want := range []string{"dev", "dev5", "master3", "release", "tencent"} {
		if !strings.Contains(branches, want) {
			t.Errorf("branch %q missing from:\n%s", want, branches)
		}
	}
	if log := git(t, project, "log", "--oneline"); !strings.Contains(log, "chore: init") {
		t.Errorf("initial commit missing: %s", log)
	}

	if len(canned.Asked) != 1 {
		t.Errorf("asked %d questions, want 1 (CI confirmation): %v", len(canned.Asked), canned.Asked)
	}
}

// TestAddCIToExistingProject renders CI files into a project that already
// has a package.json.
func TestAddCIToExistingProject(t *testing.T) {
	env := setupTestEnv(t)
	templateURL := setupTemplateRepo(t, env)
	ciURL := setupCIRepo(t, env)
	registryURL := serveRegistry(t, registryDoc(templateURL))

	project := filepath.Join(env.ProjectDir, "existing")
	writeFile(t, filepath.Join(project, "package.json"), `{"name":"order-admin"}`)

	canned := &prompt.Canned{Selects: []string{"spa", "vue-cli-base: Vue SPA"}}
	c := newCreator(env, registryURL, ciURL, canned)

	if err := c.AddCI(context.Background(), project); err != nil {
		t.Fatalf("AddCI: %v\n%s", err, env.Output)
	}

	assertFileContains(t, filepath.Join(project, ".gitlab-ci.yml"), "PROJECT: order-admin")
	assertFileContains(t, filepath.Join(project, "Makefile"), "NAME=order-admin")
	assertFileExists(t, filepath.Join(project, "docker", "nginx.test.conf"))
}

// TestDeepManifestUpdate rewrites every manifest below a tree except those
// under node_modules.
func TestDeepManifestUpdate(t *testing.T) {
	env := setupTestEnv(t)
	root := env.ProjectDir
	for _, rel := range []string{"manifest.yaml", "apps/web/manifest.yaml", "node_modules/x/manifest.yaml"} {
		writeFile(t, filepath.Join(root, rel), "stale\n")
	}

	paths, err := deploy.Update(root, deploy.ManifestFile, true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("updated %d files, want 2: %v", len(paths), paths)
	}

	assertFileContains(t, filepath.Join(root, "apps", "web", "manifest.yaml"), "kind: Deployment")
	assertFileContains(t, filepath.Join(root, "node_modules", "x", "manifest.yaml"), "stale")
}
