package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/dustess-fe/duero/internal/branding"
	"github.com/dustess-fe/duero/internal/config"
	"github.com/dustess-fe/duero/internal/fetch"
	"github.com/dustess-fe/duero/internal/prompt"
	"github.com/dustess-fe/duero/internal/registry"
	"github.com/dustess-fe/duero/internal/scaffold"
	"github.com/dustess-fe/duero/internal/scratch"
	"github.com/dustess-fe/duero/internal/shell"
	"github.com/dustess-fe/duero/internal/ui"
	"github.com/spf13/cobra"
)

// Seams replaced in tests.
var (
	newRunner = func(logger *slog.Logger) shell.Runner {
		return shell.NewExecRunner(logger)
	}
	newPrompter = func(cmd *cobra.Command) prompt.Prompter {
		return prompt.New(os.Stdin, os.Stdout, plainPrompts)
	}
)

// env bundles what a command needs to talk to the operator and the system.
type env struct {
	cmd     *cobra.Command
	console *ui.Console
	logger  *slog.Logger
	runner  shell.Runner
}

func newEnv(cmd *cobra.Command) *env {
	logger := ui.NewLogger(cmd.ErrOrStderr(), verbose)
	return &env{
		cmd:     cmd,
		console: ui.New(cmd.OutOrStdout(), ui.DetectLanguage(config.Lang())),
		logger:  logger,
		runner:  newRunner(logger),
	}
}

func (e *env) creator() *scaffold.Creator {
	return &scaffold.Creator{
		Registry:  registry.NewClient(config.RegistryURL()),
		Fetcher:   fetch.New(e.runner, e.logger),
		Runner:    e.runner,
		Prompter:  newPrompter(e.cmd),
		Console:   e.console,
		Scratch:   scratch.Resolve(config.ScratchDir(), branding.ScratchPrefix()),
		CIRepoURL: config.CIRepoURL(),
		Logger:    e.logger,
	}
}

// reportFlowError explains a create or addCI failure. These commands exit
// successfully after reporting.
func (e *env) reportFlowError(err error, key string) {
	if err == nil {
		return
	}
	e.logger.Debug("command failed", "err", err)

	switch {
	case errors.Is(err, scaffold.ErrUnknownTemplate):
		e.console.Fail(nil, "Make sure the template name is correct")
	case errors.Is(err, prompt.ErrAborted):
		e.console.Warn("Operation cancelled")
	case errors.Is(err, prompt.ErrNoChoices):
		e.console.Warn("No CI templates are configured")
	case errors.Is(err, fetch.ErrDownload):
		group := config.GitGroup()
		e.console.Warn("Make sure you have access to the template repositories (%s/docker and %s/template); ask your lead for access if you do not.", group, group)
		e.console.Fail(err, key)
	default:
		e.console.Fail(err, key)
	}
}
