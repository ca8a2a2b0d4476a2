package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustess-fe/duero/internal/fetch"
	"github.com/dustess-fe/duero/internal/manifest"
	"github.com/dustess-fe/duero/internal/prompt"
	"github.com/dustess-fe/duero/internal/registry"
	"github.com/dustess-fe/duero/internal/scratch"
	"github.com/dustess-fe/duero/internal/shell"
	"github.com/dustess-fe/duero/internal/ui"
)

// ErrUnknownTemplate is returned when the requested template id is not in
// the registry.
var ErrUnknownTemplate = errors.New("unknown template")

// initBranches are created after the initial commit of a new project.
var initBranches = []string{
	"dev", "dev2", "dev3", "dev4", "dev5",
	"master2", "master3", "master4",
	"release", "tencent",
}

// RegistrySource supplies the template registry.
type RegistrySource interface {
	Fetch(ctx context.Context) (*registry.Registry, error)
}

// Creator runs the create and addCI flows.
type Creator struct {
	Registry  RegistrySource
	Fetcher   fetch.Fetcher
	Runner    shell.Runner
	Prompter  prompt.Prompter
	Console   *ui.Console
	Scratch   scratch.Dirs
	CIRepoURL string
	Logger    *slog.Logger
}

// CreateOptions configures Create.
type CreateOptions struct {
	Name     string
	Template string // empty prompts for one
	NoYarn   bool
	Dir      string // parent directory; empty means the working directory
}

// Create builds a new project named opts.Name. Declining to overwrite an
// existing directory ends the flow without error.
func (c *Creator) Create(ctx context.Context, opts CreateOptions) error {
	projectDir := filepath.Join(opts.Dir, opts.Name)
	if _, err := os.Stat(projectDir); err == nil {
		ok, err := prompt.ConfirmOverwrite(c.Prompter, c.Console, opts.Name)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	reg, err := c.Registry.Fetch(ctx)
	if err != nil {
		return err
	}

	id := opts.Template
	if id == "" {
		if id, err = prompt.ChooseTemplate(c.Prompter, c.Console, reg); err != nil {
			return err
		}
	}
	tpl, ok := reg.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	c.logger().Debug("creating project", "name", opts.Name, "template", tpl.ID, "dir", projectDir)

	if tpl.ID == registry.TemplateUni {
		_, err := c.Runner.Run(ctx, shell.Command{
			Dir:    opts.Dir,
			Name:   "vue",
			Args:   []string{"create", "-p", "direct:" + tpl.URL, "--clone", opts.Name},
			Attach: true,
		})
		return err
	}

	if err := c.Scratch.Reset(); err != nil {
		return err
	}
	if err := c.download(ctx, tpl.URL, c.Scratch.Template, "project template"); err != nil {
		return err
	}
	step := c.Console.Begin("Rendering project template")
	if err := step.End(Generate(c.Scratch.Template, tpl.ID, projectDir, opts.Name)); err != nil {
		return err
	}

	if ciDir := tpl.CIDir(); ciDir != "" {
		install := true
		if tpl.NeedInquirerCI {
			if install, err = prompt.ConfirmCI(c.Prompter, c.Console); err != nil {
				return err
			}
		}
		if install {
			if err := c.renderCI(ctx, tpl.ID, projectDir, opts.Name, ciDir); err != nil {
				return err
			}
		}
	}

	if !tpl.NoGitInitAndYarn {
		if err := c.gitInit(ctx, projectDir); err != nil {
			return err
		}
		if !opts.NoYarn {
			if err := c.install(ctx, projectDir); err != nil {
				return err
			}
		}
	}

	c.Console.Success("Successfully created project %s", ui.Accent(opts.Name))
	return nil
}

// AddCI adds CI files to the project in dir, named after its package.json.
func (c *Creator) AddCI(ctx context.Context, dir string) error {
	pkg, err := manifest.ReadDir(dir)
	if err != nil {
		return err
	}
	reg, err := c.Registry.Fetch(ctx)
	if err != nil {
		return err
	}
	choice, err := prompt.ChooseCI(c.Prompter, c.Console, reg)
	if err != nil {
		return err
	}
	if err := c.Scratch.Reset(); err != nil {
		return err
	}
	if err := c.renderCI(ctx, choice.Template, dir, pkg.Name, choice.DirName); err != nil {
		return err
	}
	c.Console.Success("CI files added to %s", ui.Accent(pkg.Name))
	return nil
}

func (c *Creator) renderCI(ctx context.Context, templateID, targetDir, projectName, ciDir string) error {
	if err := c.download(ctx, c.CIRepoURL, c.Scratch.CITemplate, "CI template"); err != nil {
		return err
	}
	step := c.Console.Begin("Rendering CI template")
	return step.End(RenderCI(c.Scratch.CITemplate, templateID, targetDir, projectName, ciDir))
}

func (c *Creator) download(ctx context.Context, url, dest, label string) error {
	step := c.Console.Begin("Downloading %s", c.Console.Sprintf(label))
	return step.End(c.Fetcher.Fetch(ctx, url, dest))
}

func (c *Creator) gitInit(ctx context.Context, projectDir string) error {
	cmds := []shell.Command{
		shell.Git(projectDir, "init"),
		shell.Git(projectDir, "add", "."),
		shell.Git(projectDir, "commit", "-m", "chore: init"),
	}
	for _, b := range initBranches {
		cmds = append(cmds, shell.Git(projectDir, "branch", b))
	}
	step := c.Console.Begin("Initializing git repository")
	return step.End(shell.RunAll(ctx, c.Runner, cmds...))
}

func (c *Creator) install(ctx context.Context, projectDir string) error {
	step := c.Console.Begin("Installing dependencies with yarn")
	if _, err := c.Runner.Run(ctx, shell.Cmd(projectDir, "yarn")); err != nil {
		step.Failed()
		return fmt.Errorf("dependency installation failed, run yarn in %s manually: %w", projectDir, err)
	}
	step.Done()
	return nil
}

func (c *Creator) logger() *slog.Logger {
	if c.Logger == nil {
		return ui.Discard()
	}
	return c.Logger
}
