package cli

import (
	"github.com/dustess-fe/duero/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createTemplate string
	createNoYarn   bool
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a Vue project from a template",
	Long: `Create a project directory from a template in the template registry.

The template is downloaded, package.json is named after the project, and
placeholders such as {{projectName}} are filled in. Templates with a CI
directory also get GitLab CI, Docker and Makefile configuration. Unless the
template opts out, a git repository is initialized with the standard
branches and dependencies are installed with yarn.

The name must not carry an npm scope.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv(cmd)
		err := e.creator().Create(cmd.Context(), scaffold.CreateOptions{
			Name:     args[0],
			Template: createTemplate,
			NoYarn:   createNoYarn,
			Dir:      ".",
		})
		e.reportFlowError(err, "Failed to create project")
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template id; prompts when omitted")
	createCmd.Flags().BoolVar(&createNoYarn, "no-yarn", false, "Skip installing dependencies with yarn")
	rootCmd.AddCommand(createCmd)
}
