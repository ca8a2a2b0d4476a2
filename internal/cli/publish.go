package cli

import (
	"errors"
	"os"

	"github.com/dustess-fe/duero/internal/config"
	"github.com/dustess-fe/duero/internal/notify"
	"github.com/dustess-fe/duero/internal/release"
	"github.com/spf13/cobra"
)

// tagEnvVar carries the tag name in GitLab CI pipelines.
const tagEnvVar = "CI_COMMIT_REF_NAME"

var publishTag string

var publishCmd = &cobra.Command{
	Use:   "publish <accessToken> <npmToken> [robotUrl]",
	Short: "Publish the package named by the current release tag",
	Long: `Publish an npm package from a release tag, normally inside a CI job.

The tag is read from $CI_COMMIT_REF_NAME and has the form
<branch>-v<version> for single-package repositories or
<branch>-<package>-v<version> for repositories holding several packages.
The branch is checked out, package.json is aligned with the tag version,
and the package is built and published with <npmToken>. When [robotUrl] is
given a release notice is posted to that group webhook. Commits made along
the way are pushed with <accessToken>.

Requires git, yarn and npm.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEnv(cmd)

		tag := publishTag
		if tag == "" {
			tag = os.Getenv(tagEnvVar)
		}
		if tag == "" {
			err := errors.New(tagEnvVar + " is not set")
			e.console.Fail(err, "No tag to publish; set CI_COMMIT_REF_NAME")
			return reported(err)
		}

		p := &release.Pipeline{
			Options: release.Options{
				Dir:         ".",
				AccessToken: args[0],
				NPMToken:    args[1],
				Registry:    config.NPMRegistry(),
				GitGroup:    config.GitGroup(),
			},
			Runner:  e.runner,
			Console: e.console,
			Logger:  e.logger,
		}
		if len(args) == 3 && args[2] != "" {
			p.Notifier = notify.NewWebhook(args[2])
		}

		if err := p.Run(cmd.Context(), tag); err != nil {
			e.console.Fail(err, "Publish failed; check the error and make sure the tag follows the naming convention")
			return reported(err)
		}
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishTag, "tag", "", "Tag to publish (default $"+tagEnvVar+")")
	rootCmd.AddCommand(publishCmd)
}
