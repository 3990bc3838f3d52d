// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/acw/matterhorn/internal/config"
	"github.com/acw/matterhorn/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// issueStyle is the glamour style used for catalog entries in verbose mode.
const issueStyle = "dark"

type (
	// App wires CLI services and shared dependencies. All command handlers
	// receive an App and reach configuration only through its ConfigProvider.
	App struct {
		Config ConfigProvider
		Logger *log.Logger

		stdout io.Writer
		stderr io.Writer

		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Logger *log.Logger
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider resolves matterhorn configuration using explicit options.
	ConfigProvider interface {
		ResolveWithPath(opts config.LoadOptions) (config.Config, string, error)
		Locate(opts config.LoadOptions) (string, error)
		Candidates(opts config.LoadOptions) []config.Candidate
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
// The default provider logs through the App's logger, so raising the logger
// level after construction also affects resolution logging.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Logger == nil {
		deps.Logger = log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: config.AppName,
			Level:  log.WarnLevel,
		})
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider(config.Dependencies{Logger: deps.Logger})
	}

	return &App{
		Config: deps.Config,
		Logger: deps.Logger,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadOptions returns the options derived from --config / MATTERHORN_CONFIG.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configPath}
}

// failResolution prints a resolution failure with its suggestions and, in
// verbose mode, the rendered catalog entry. The returned *ExitError makes the
// process exit with status 1 without printing the error a second time.
func (a *App) failResolution(cmd *cobra.Command, err error) error {
	ae := issue.FromResolution(err)
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error:")+" "+ae.Format(a.verbose))

	if a.verbose && ae.Issue != 0 {
		if entry := issue.Get(ae.Issue); entry != nil {
			rendered, renderErr := entry.Render(issueStyle)
			if renderErr != nil {
				a.Logger.Debug("failed to render issue", "issue", ae.Issue, "error", renderErr)
			} else {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1, Err: err}
}
