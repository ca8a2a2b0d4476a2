package release

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustess-fe/duero/internal/shell"
)

// AuthFileName is the npm configuration file that receives the token.
const AuthFileName = ".npmrc"

// AuthFile adds a registry token to a package's .npmrc for the duration of
// a publish and puts the file back afterwards.
type AuthFile struct {
	Dir string

	existed  bool
	appended bool
}

// Path returns the .npmrc location.
func (a *AuthFile) Path() string {
	return filepath.Join(a.Dir, AuthFileName)
}

// Append writes the registry token line, creating the file when missing.
func (a *AuthFile) Append(registryURL, token string) error {
	path := a.Path()
	_, err := os.Stat(path)
	a.existed = err == nil

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s:_authToken=\"%s\"\n", registryKey(registryURL), token); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	a.appended = true
	return nil
}

// Restore undoes Append: a tracked file is checked out again, a file that
// did not exist is removed.
func (a *AuthFile) Restore(ctx context.Context, r shell.Runner) error {
	if !a.appended {
		return nil
	}
	a.appended = false
	if a.existed {
		_, err := r.Run(ctx, shell.Git(a.Dir, "checkout", "--", AuthFileName))
		return err
	}
	if err := os.Remove(a.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", a.Path(), err)
	}
	return nil
}

// registryKey renders a registry URL as the "//host/path/" prefix npm uses
// for scoped credentials.
func registryKey(registryURL string) string {
	u, err := url.Parse(registryURL)
	if err != nil || u.Host == "" {
		return "//" + strings.Trim(strings.TrimPrefix(strings.TrimPrefix(registryURL, "https://"), "http://"), "/") + "/"
	}
	return "//" + u.Host + strings.TrimSuffix(u.Path, "/") + "/"
}
