package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustess-fe/duero/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys understood by Get, Set and the resolvers below.
const (
	KeyRegistryURL = "registry_url"
	KeyCIRepoURL   = "ci_repo_url"
	KeyNPMRegistry = "npm_registry"
	KeyGitGroup    = "git_group"
	KeyScratchDir  = "scratch_dir"
	KeyLang        = "lang"
)

// Keys lists every supported setting in display order.
var Keys = []string{KeyRegistryURL, KeyCIRepoURL, KeyNPMRegistry, KeyGitGroup, KeyScratchDir, KeyLang}

// Dir returns the path to the config directory (~/.duero/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.duero/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnown reports whether key is a supported setting.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// RegistryURL returns the template registry document URL.
func RegistryURL() string { return getOr(KeyRegistryURL, branding.RegistryURL()) }

// CIRepoURL returns the CI template repository URL.
func CIRepoURL() string { return getOr(KeyCIRepoURL, branding.CIRepoURL()) }

// NPMRegistry returns the registry packages are published to.
func NPMRegistry() string { return getOr(KeyNPMRegistry, branding.NPMRegistry()) }

// GitGroup returns the git group used to pick the push remote.
func GitGroup() string { return getOr(KeyGitGroup, branding.GitGroup()) }

// ScratchDir returns the parent of the scratch download directories.
// Defaults to the user's home directory.
func ScratchDir() string {
	if v := Get(KeyScratchDir); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}

// Lang returns the explicitly configured operator language, if any.
func Lang() string { return Get(KeyLang) }

func getOr(key, fallback string) string {
	if v := Get(key); v != "" {
		return v
	}
	return fallback
}
