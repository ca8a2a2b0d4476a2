// Package config manages user-level settings stored at ~/.duero/config.yaml.
// Every setting can also be supplied through a DUERO_* environment variable;
// unset settings fall back to the compiled-in branding defaults.
package config
