package cli

import (
	"fmt"
	"strings"

	"github.com/dustess-fe/duero/internal/branding"
	"github.com/dustess-fe/duero/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.

Every setting can also be given as an environment variable, for example
%s overrides registry_url.

Keys: %s`, branding.HomeDir(), branding.EnvVar("REGISTRY_URL"), strings.Join(config.Keys, ", ")),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnown(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), effective(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective value of every setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, effective(key))
		}
		return nil
	},
}

// effective returns a setting with its built-in default applied.
func effective(key string) string {
	switch key {
	case config.KeyRegistryURL:
		return config.RegistryURL()
	case config.KeyCIRepoURL:
		return config.CIRepoURL()
	case config.KeyNPMRegistry:
		return config.NPMRegistry()
	case config.KeyGitGroup:
		return config.GitGroup()
	case config.KeyScratchDir:
		return config.ScratchDir()
	}
	return config.Get(key)
}
