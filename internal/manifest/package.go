package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the descriptor file name.
const FileName = "package.json"

// Indentation styles used when writing descriptors.
const (
	IndentTab    = "\t"
	IndentSpaces = "  "
)

// ErrInvalid reports a descriptor that is not a JSON object.
var ErrInvalid = errors.New("invalid package descriptor")

// Package is a parsed package.json.
type Package struct {
	Path    string
	Name    string
	Version string

	raw []byte
}

// Read parses the descriptor at path. Comments and trailing commas are
// tolerated.
func Read(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// ReadDir parses the package.json in dir.
func ReadDir(dir string) (*Package, error) {
	return Read(filepath.Join(dir, FileName))
}

// Parse decodes descriptor bytes.
func Parse(data []byte) (*Package, error) {
	raw := jsonc.ToJSON(data)
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrInvalid
	}
	p := &Package{raw: raw}
	p.refresh()
	return p, nil
}

func (p *Package) refresh() {
	p.Name = gjson.GetBytes(p.raw, "name").String()
	p.Version = gjson.GetBytes(p.raw, "version").String()
}

// Get returns the string value of a top-level field.
func (p *Package) Get(key string) string {
	return gjson.GetBytes(p.raw, gjson.Escape(key)).String()
}

// Set assigns a top-level string field, appending it when absent.
func (p *Package) Set(key, value string) error {
	raw, err := sjson.SetBytes(p.raw, gjson.Escape(key), value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	p.raw = raw
	p.refresh()
	return nil
}

// SetName assigns the name field.
func (p *Package) SetName(name string) error {
	return p.Set("name", name)
}

// SetVersion assigns the version field.
func (p *Package) SetVersion(version string) error {
	return p.Set("version", version)
}

// Bytes renders the descriptor with the given indentation.
func (p *Package) Bytes(indent string) []byte {
	return pretty.PrettyOptions(p.raw, &pretty.Options{Indent: indent, Width: 0})
}

// Write saves the descriptor back to its Path.
func (p *Package) Write(indent string) error {
	if p.Path == "" {
		return errors.New("package descriptor has no path")
	}
	return p.WriteTo(p.Path, indent)
}

// WriteTo saves the descriptor to path.
func (p *Package) WriteTo(path, indent string) error {
	if err := os.WriteFile(path, p.Bytes(indent), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	p.Path = path
	return nil
}

// EnsureFile creates an empty "{}" descriptor in dir when none exists and
// returns its path.
func EnsureFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	return path, nil
}
