package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustess-fe/duero/internal/shell"
)

var (
	// ErrDownload marks any failure to retrieve a template source.
	ErrDownload = errors.New("template download failed")

	// ErrPermission marks a source the remote refused to serve.
	ErrPermission = errors.New("access to template repository denied")
)

// tmpSuffix is appended to the destination during atomic downloads.
const tmpSuffix = ".tmp"

// Fetcher retrieves a template source into dest, replacing dest entirely.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Remote fetches git repositories with the git CLI and archives over HTTP.
type Remote struct {
	Runner     shell.Runner
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// New returns a Remote using runner for git.
func New(runner shell.Runner, logger *slog.Logger) *Remote {
	return &Remote{Runner: runner, HTTPClient: http.DefaultClient, Logger: logger}
}

// Fetch implements Fetcher.
func (r *Remote) Fetch(ctx context.Context, url, dest string) error {
	src, err := ParseSource(url)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("clearing %s: %w", dest, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", dest, err)
	}
	if r.Logger != nil {
		r.Logger.Debug("fetching template", "url", shell.Redact(src.URL), "ref", src.Ref, "dest", dest)
	}

	if src.Kind == KindGit {
		return r.clone(ctx, src, dest)
	}
	return r.download(ctx, src, dest)
}

// clone performs a shallow clone into a temporary sibling, then renames it
// into place and drops the .git directory.
func (r *Remote) clone(ctx context.Context, src Source, dest string) error {
	tmpDir := dest + tmpSuffix
	_ = os.RemoveAll(tmpDir)

	args := []string{"clone", "--depth=1"}
	if src.Ref != "" {
		args = append(args, "--branch", src.Ref)
	}
	args = append(args, src.URL, tmpDir)

	if _, err := r.Runner.Run(ctx, shell.Git("", args...)); err != nil {
		_ = os.RemoveAll(tmpDir)
		return classify(fmt.Errorf("cloning %s: %w", shell.Redact(src.URL), err))
	}

	if err := os.Rename(tmpDir, dest); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("%w: finalizing clone: %v", ErrDownload, err)
	}
	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		return fmt.Errorf("removing template history: %w", err)
	}
	return nil
}

var permissionMarkers = []string{
	"authentication failed",
	"could not read username",
	"permission denied",
	"access denied",
	"repository not found",
	"the requested url returned error: 401",
	"the requested url returned error: 403",
}

// classify wraps err with ErrDownload, adding ErrPermission when the git
// output indicates the remote refused access.
func classify(err error) error {
	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.ToLower(exitErr.Stderr)
		for _, marker := range permissionMarkers {
			if strings.Contains(stderr, marker) {
				return fmt.Errorf("%w: %w: %w", ErrDownload, ErrPermission, err)
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrDownload, err)
}
