package release

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dustess-fe/duero/internal/manifest"
	"github.com/dustess-fe/duero/internal/search"
	"github.com/dustess-fe/duero/internal/shell"
	"github.com/dustess-fe/duero/internal/ui"
)

// Commit messages created by the pipeline.
const (
	VersionCommitMessage   = "chore: bump version"
	ChangelogCommitMessage = "docs: update changelog"
)

// pluginMarker marks Vue CLI plugin packages, which are published unbuilt.
const pluginMarker = "vue-cli-plugin-"

// Notifier announces a finished release.
type Notifier interface {
	Send(ctx context.Context, content string) error
}

// Options configures a Pipeline.
type Options struct {
	Dir         string // repository root
	AccessToken string // git push credential
	NPMToken    string // registry publish credential
	Registry    string // npm registry URL
	GitGroup    string // selects the push remote
}

// Pipeline publishes the package a tag refers to. A Pipeline holds the state
// of a single run and must not be reused.
type Pipeline struct {
	Options
	Runner   shell.Runner
	Console  *ui.Console
	Notifier Notifier // nil disables notification and changelog
	Logger   *slog.Logger

	tag            Tag
	tagger         Tagger
	pkgPath        string
	pkgName        string
	versionChanged bool
	notified       bool
}

// Run executes the pipeline for tagName and stops at the first failure.
func (p *Pipeline) Run(ctx context.Context, tagName string) error {
	if _, err := p.Runner.Run(ctx, shell.Git(p.Dir, "fetch", "--tags", "--force")); err != nil {
		return fmt.Errorf("fetching tags: %w", err)
	}

	tag, err := ParseTag(tagName)
	if err != nil {
		return err
	}
	p.tag = tag
	p.logger().Info("releasing", "tag", tag.Name, "branch", tag.Branch, "package", tag.Package, "version", tag.Version)

	if err := p.locate(); err != nil {
		return err
	}
	if err := p.checkout(ctx); err != nil {
		return err
	}
	if err := p.configureIdentity(ctx); err != nil {
		return err
	}
	if err := p.EnsureVersion(ctx); err != nil {
		return err
	}
	if err := p.publishWithToken(ctx); err != nil {
		return err
	}
	if p.Notifier != nil {
		if err := p.notify(ctx); err != nil {
			return err
		}
	}
	if p.versionChanged || p.notified {
		if err := p.push(ctx); err != nil {
			return err
		}
	}
	if p.versionChanged {
		p.Console.Warn("package.json version differed from the tag; updated it and pushed to %s", p.tag.Branch)
	}
	p.Console.Success("Published %s %s", ui.Accent(p.pkgName), p.tag.Version)
	return nil
}

// locate finds the package.json the tag refers to.
func (p *Pipeline) locate() error {
	if !p.tag.MultiPackage() {
		p.pkgPath = filepath.Join(p.Dir, manifest.FileName)
		return nil
	}
	path, err := search.Package(p.Dir, p.tag.Package)
	if err != nil {
		return fmt.Errorf("locating package %s: %w", p.tag.Package, err)
	}
	p.pkgPath = path
	return nil
}

func (p *Pipeline) pkgDir() string {
	return filepath.Dir(p.pkgPath)
}

// checkout switches to the release branch, creating a tracking branch when
// it does not exist locally, and brings it up to date.
func (p *Pipeline) checkout(ctx context.Context) error {
	b := p.tag.Branch
	if _, err := p.Runner.Run(ctx, shell.Git(p.Dir, "fetch", "origin")); err != nil {
		return fmt.Errorf("fetching origin: %w", err)
	}
	if _, err := p.Runner.Run(ctx, shell.Git(p.Dir, "checkout", b)); err != nil {
		p.logger().Debug("creating tracking branch", "branch", b, "err", err)
		if _, err := p.Runner.Run(ctx, shell.Git(p.Dir, "checkout", "-b", b, "origin/"+b)); err != nil {
			return fmt.Errorf("checking out %s: %w", b, err)
		}
	}
	return shell.RunAll(ctx, p.Runner,
		shell.Git(p.Dir, "checkout", "--", "."),
		shell.Git(p.Dir, "pull"),
	)
}

// configureIdentity commits as the tagger in this repository.
func (p *Pipeline) configureIdentity(ctx context.Context) error {
	out, err := p.Runner.Run(ctx, shell.Git(p.Dir, "show", p.tag.Name, "-s", "--format="))
	if err != nil {
		return fmt.Errorf("reading tag %s: %w", p.tag.Name, err)
	}
	tagger, err := ParseTagger(out.Stdout)
	if err != nil {
		return fmt.Errorf("tag %s: %w", p.tag.Name, err)
	}
	p.tagger = tagger
	return shell.RunAll(ctx, p.Runner,
		shell.Git(p.Dir, "config", "user.email", tagger.Email),
		shell.Git(p.Dir, "config", "user.name", tagger.Name),
	)
}

// EnsureVersion sets the descriptor version to the tag version and commits
// the change. It does nothing when the versions already match, so calling
// it again after a successful run makes no further commit.
func (p *Pipeline) EnsureVersion(ctx context.Context) error {
	pkg, err := manifest.Read(p.pkgPath)
	if err != nil {
		return err
	}
	p.pkgName = pkg.Name
	if sameVersion(pkg.Version, p.tag.Version) {
		return nil
	}

	p.logger().Info("updating version", "from", pkg.Version, "to", p.tag.Version, "file", p.pkgPath)
	if err := pkg.SetVersion(p.tag.Version); err != nil {
		return err
	}
	if err := pkg.Write(manifest.IndentSpaces); err != nil {
		return err
	}
	if err := shell.RunAll(ctx, p.Runner,
		shell.Git(p.Dir, "add", p.relative(p.pkgPath)),
		shell.Git(p.Dir, "commit", "-m", VersionCommitMessage),
	); err != nil {
		return fmt.Errorf("committing version: %w", err)
	}
	p.versionChanged = true
	return nil
}

// publishWithToken publishes with the npm token present in .npmrc and
// restores the file whether or not publishing succeeded.
func (p *Pipeline) publishWithToken(ctx context.Context) error {
	auth := &AuthFile{Dir: p.pkgDir()}
	if err := auth.Append(p.Registry, p.NPMToken); err != nil {
		return err
	}

	publishErr := p.publish(ctx)
	if err := auth.Restore(ctx, p.Runner); err != nil {
		p.Console.Warn("Could not restore %s: %v", auth.Path(), err)
	}
	return publishErr
}

func (p *Pipeline) publish(ctx context.Context) error {
	dir := p.pkgDir()
	if !strings.Contains(p.pkgName, pluginMarker) {
		step := p.Console.Begin("Building %s", p.pkgName)
		if err := shell.RunAll(ctx, p.Runner, shell.Cmd(dir, "yarn"), shell.Cmd(dir, "yarn", "build")); err != nil {
			step.Failed()
			p.logger().Warn("build failed, publishing sources as they are", "err", err)
		} else {
			step.Done()
		}
	}

	step := p.Console.Begin("Publishing %s %s", p.pkgName, p.tag.Version)
	_, err := p.Runner.Run(ctx, shell.Cmd(dir, "npm", "publish", "--registry", p.Registry))
	if err := step.End(err); err != nil {
		return fmt.Errorf("npm publish: %w", err)
	}
	return nil
}

// Notice renders the chat message announcing the release.
func (p *Pipeline) Notice() string {
	return fmt.Sprintf("%s %s has been published by %s. Release notes: %s\n\nPackage page: %s/-/web/detail/%s",
		p.pkgName, p.tag.Version, p.tagger.Name, p.tagger.Message,
		strings.TrimSuffix(p.Registry, "/"), p.pkgName)
}

// notify posts the release notice, then regenerates and commits the
// changelog when the project supports it.
func (p *Pipeline) notify(ctx context.Context) error {
	if err := p.Notifier.Send(ctx, p.Notice()); err != nil {
		return fmt.Errorf("sending release notice: %w", err)
	}
	p.notified = true

	err := shell.RunAll(ctx, p.Runner,
		shell.Cmd(p.Dir, "yarn", "changelog"),
		shell.Git(p.Dir, "add", "."),
		shell.Git(p.Dir, "commit", "-m", ChangelogCommitMessage),
	)
	if err != nil {
		p.logger().Info("changelog not updated", "err", err)
	}
	return nil
}

// push sends HEAD to the release branch using the access token.
func (p *Pipeline) push(ctx context.Context) error {
	out, err := p.Runner.Run(ctx, shell.Git(p.Dir, "remote", "-v"))
	if err != nil {
		return fmt.Errorf("listing remotes: %w", err)
	}
	pushURL, err := PushURL(out.Stdout, p.GitGroup, p.AccessToken)
	if err != nil {
		return err
	}
	step := p.Console.Begin("Pushing to %s", p.tag.Branch)
	_, err = p.Runner.Run(ctx, shell.Git(p.Dir, "push", pushURL, "HEAD:"+p.tag.Branch))
	return step.End(err)
}

func (p *Pipeline) relative(path string) string {
	if rel, err := filepath.Rel(p.Dir, path); err == nil {
		return rel
	}
	return path
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return ui.Discard()
	}
	return p.Logger
}
