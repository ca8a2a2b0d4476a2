package cli

import "github.com/spf13/cobra"

var addCICmd = &cobra.Command{
	Use:     "addCI",
	Aliases: []string{"add-ci"},
	Short:   "Add CI configuration files to the current project",
	Long: `Add GitLab CI, Docker and Makefile configuration to the project in the
current directory. The project name is read from package.json; the CI
template is chosen interactively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv(cmd)
		e.reportFlowError(e.creator().AddCI(cmd.Context(), "."), "Failed to add CI files")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCICmd)
}
