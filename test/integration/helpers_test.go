//go:build integration

package integration_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dustess-fe/duero/internal/branding"
	"github.com/dustess-fe/duero/internal/fetch"
	"github.com/dustess-fe/duero/internal/prompt"
	"github.com/dustess-fe/duero/internal/registry"
	"github.com/dustess-fe/duero/internal/scaffold"
	"github.com/dustess-fe/duero/internal/scratch"
	"github.com/dustess-fe/duero/internal/shell"
	"github.com/dustess-fe/duero/internal/ui"
	"golang.org/x/text/language"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME; also the scratch parent
	RepoDir    string // local git repositories standing in for remotes
	ProjectDir string // parent of created projects
	Output     *bytes.Buffer
}

// setupTestEnv creates isolated temp directories and a git identity so every
// operation is sandboxed. Tests are skipped when git is not installed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if !shell.Available("git") {
		t.Skip("git not installed")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		RepoDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		Output:     &bytes.Buffer{},
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Integration")
	t.Setenv("GIT_AUTHOR_EMAIL", "integration@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Integration")
	t.Setenv("GIT_COMMITTER_EMAIL", "integration@example.com")

	return env
}

// setupTemplateRepo creates a git repository holding a project template and
// returns its file URL.
func setupTemplateRepo(t *testing.T, env *testEnv) string {
	t.Helper()
	dir := filepath.Join(env.RepoDir, "vue-cli-base-micro")
	writeFile(t, filepath.Join(dir, "README.md"), "# {{projectName}}\n")
	writeFile(t, filepath.Join(dir, "package.json"), `{
  // template manifest
  "name": "vue-cli-base-micro",
  "version": "0.1.0",
  "private": true,
}
`)
	writeFile(t, filepath.Join(dir, "vue.config.js"), "module.exports = { name: '{{projectName}}' }\n")
	writeFile(t, filepath.Join(dir, "src", "main.js"), "console.log('hi')\n")
	commitRepo(t, dir)
	return "file://" + filepath.ToSlash(dir)
}

// setupCIRepo creates a git repository laid out like the CI template
// repository (src/<dirName>/...) and returns its file URL.
func setupCIRepo(t *testing.T, env *testEnv) string {
	t.Helper()
	dir := filepath.Join(env.RepoDir, "docker")
	for _, ci := range []string{"vue-micro", "vue-spa"} {
		base := filepath.Join(dir, "src", ci)
		writeFile(t, filepath.Join(base, ".gitlab-ci.yml"), "variables:\n  PROJECT: {{projectName}}\n")
		writeFile(t, filepath.Join(base, "Makefile"), "NAME={{projectName}}\n")
		writeFile(t, filepath.Join(base, "Dockerfile"), "LABEL app={{projectName}}\n")
		writeFile(t, filepath.Join(base, "docker", "nginx.test.conf"), "server {\n{{dockerLocationConfig}}\n}\n")
	}
	commitRepo(t, dir)
	return "file://" + filepath.ToSlash(dir)
}

// serveRegistry serves doc as the registry document and returns its URL.
func serveRegistry(t *testing.T, doc string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/index.json"
}

// newCreator wires a Creator to real git and the given registry.
func newCreator(env *testEnv, registryURL, ciRepoURL string, p prompt.Prompter) *scaffold.Creator {
	logger := ui.Discard()
	runner := shell.NewExecRunner(logger)
	return &scaffold.Creator{
		Registry:  registry.NewClient(registryURL),
		Fetcher:   fetch.New(runner, logger),
		Runner:    runner,
		Prompter:  p,
		Console:   ui.New(env.Output, language.English),
		Scratch:   scratch.Resolve(env.HomeDir, branding.ScratchPrefix()),
		CIRepoURL: ciRepoURL,
		Logger:    logger,
	}
}

// commitRepo initializes dir as a git repository with everything committed.
func commitRepo(t *testing.T, dir string) {
	t.Helper()
	git(t, dir, "init", "-q", "-b", "main")
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-q", "-m", "init")
}

// git runs a git command in dir and returns its trimmed output.
func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
