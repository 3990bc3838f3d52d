// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables that mirror global flags,
// e.g. MATTERHORN_VERBOSE and MATTERHORN_CONFIG.
const envPrefix = "MATTERHORN"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the matterhorn command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "matterhorn",
		Short: "A terminal client for Mattermost",
		Long: TitleStyle.Render("matterhorn") + SubtitleStyle.Render(" - A terminal client for Mattermost") + `

matterhorn reads its server settings from the [mattermost] section of a
config.ini file. The first file found wins:

  1. ./config.ini
  2. $XDG_CONFIG_HOME/matterhorn/config.ini (or the platform equivalent)
  3. each $XDG_CONFIG_DIRS entry + /matterhorn/config.ini
  4. /etc/matterhorn/config.ini

` + SubtitleStyle.Render("Examples:") + `
  matterhorn config show        Show the resolved configuration
  matterhorn config path        List the files that are searched
  matterhorn config check       Resolve and lint the configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.applySettings(settings, cmd)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output (env: MATTERHORN_VERBOSE)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "use this config file instead of searching (env: MATTERHORN_CONFIG)")

	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// applySettings merges global flags with their environment variables. Flags
// given on the command line win over the environment.
func (a *App) applySettings(settings *viper.Viper, cmd *cobra.Command) error {
	if err := settings.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("failed to bind global flags: %w", err)
	}

	a.verbose = settings.GetBool("verbose")
	a.configPath = settings.GetString("config")

	if a.verbose {
		a.Logger.SetLevel(log.DebugLevel)
	}
	a.Logger.Debug("settings loaded", "verbose", a.verbose, "config", a.configPath)
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the command tree.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
