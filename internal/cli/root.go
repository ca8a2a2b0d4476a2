package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustess-fe/duero/internal/branding"
	"github.com/dustess-fe/duero/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose      bool
	plainPrompts bool
)

// errReported marks errors a command has already shown to the operator.
var errReported = errors.New("reported")

type reportedError struct{ err error }

func (e reportedError) Error() string   { return e.err.Error() }
func (e reportedError) Unwrap() []error { return []error{e.err, errReported} }

func reported(err error) error { return reportedError{err: err} }

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds front-end projects from remote templates, adds CI
configuration to existing projects, refreshes deployment manifests, and
publishes npm packages from release tags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output, including every external command")
	rootCmd.PersistentFlags().BoolVar(&plainPrompts, "plain", false, "Ask questions as numbered plain-text prompts")
}

// Execute runs the root command with build info injected via ldflags.
// Errors not already shown by a command are printed to stderr.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}}\n", branding.CLIName()))

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
