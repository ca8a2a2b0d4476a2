// Package branding provides compile-time identity values for the CLI.
//
// Values come from the embedded branding.yaml; hard defaults cover a missing
// or partial file so the binary always has a usable identity.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	RegistryURL   string `yaml:"registry_url"`
	CIRepoURL     string `yaml:"ci_repo_url"`
	NPMRegistry   string `yaml:"npm_registry"`
	GitGroup      string `yaml:"git_group"`
	ScratchPrefix string `yaml:"scratch_prefix"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:       "duero",
			DisplayName:   "Duero",
			Description:   "Scaffold, wire CI for, and publish front-end projects",
			HomeDir:       ".duero",
			EnvPrefix:     "DUERO",
			GoModule:      "github.com/dustess-fe/duero",
			NPMRegistry:   "https://npm.dustess.com",
			GitGroup:      "dustess-fe",
			ScratchPrefix: "duero-template",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "duero").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".duero").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "DUERO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RegistryURL returns the default URL of the template registry document.
func RegistryURL() string { load(); return defaults.RegistryURL }

// CIRepoURL returns the default git URL of the CI template repository.
func CIRepoURL() string { load(); return defaults.CIRepoURL }

// NPMRegistry returns the default private npm registry.
func NPMRegistry() string { load(); return defaults.NPMRegistry }

// GitGroup returns the git group whose remote is used when pushing releases.
func GitGroup() string { load(); return defaults.GitGroup }

// ScratchPrefix returns the base name of the scratch download directories.
func ScratchPrefix() string { load(); return defaults.ScratchPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("lang") → "DUERO_LANG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
