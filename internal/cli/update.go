package cli

import (
	"errors"
	"strings"

	"github.com/dustess-fe/duero/internal/deploy"
	"github.com/spf13/cobra"
)

var updateDeep bool

var updateCmd = &cobra.Command{
	Use:   "update <fileName>",
	Short: "Rewrite deployment manifests with the standard definition",
	Long: `Replace the contents of files named <fileName> with the standard
Kubernetes Deployment and Service definition. Only manifest.yaml is
supported. Without --deep only the file in the current directory is
updated; with --deep every match below it is, skipping node_modules.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv(cmd)
		fileName := args[0]

		paths, err := deploy.Update(".", fileName, updateDeep)
		switch {
		case errors.Is(err, deploy.ErrUnsupported):
			e.console.Warn("Only %s can be updated", strings.Join(deploy.Supported(), ", "))
		case errors.Is(err, deploy.ErrNoMatch) && updateDeep:
			e.console.Warn("No %s in the current directory or its subdirectories", fileName)
		case errors.Is(err, deploy.ErrNoMatch):
			e.console.Warn("No %s in the current directory", fileName)
		case err != nil:
			e.console.Fail(err, "Failed to update files")
		default:
			e.console.Info("Updated files:")
			for _, p := range paths {
				e.console.Info("  %s", p)
			}
			e.console.Success("Update succeeded")
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateDeep, "deep", "d", false, "Also update matching files in subdirectories")
	rootCmd.AddCommand(updateCmd)
}
