// Package scratch resolves and resets the local directories templates are
// downloaded into before being copied to their destination.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dirs holds the scratch locations for one invocation.
type Dirs struct {
	Template   string // project template download
	CITemplate string // CI template repository download
}

// Resolve returns the scratch directories under parent, named
// "<prefix>" and "<prefix>-ci".
func Resolve(parent, prefix string) Dirs {
	return Dirs{
		Template:   filepath.Join(parent, prefix),
		CITemplate: filepath.Join(parent, prefix+"-ci"),
	}
}

// Reset removes both scratch directories so each download starts clean.
func (d Dirs) Reset() error {
	for _, dir := range []string{d.Template, d.CITemplate} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing scratch directory %s: %w", dir, err)
		}
	}
	return nil
}
