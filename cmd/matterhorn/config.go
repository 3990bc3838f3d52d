// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/acw/matterhorn/internal/config"
	"github.com/acw/matterhorn/pkg/platform"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatTOML = "toml"
	formatYAML = "yaml"
)

type (
	// configDocument is the shape printed by `config show --format toml|yaml`.
	configDocument struct {
		Mattermost mattermostDocument `toml:"mattermost" yaml:"mattermost"`
	}

	mattermostDocument struct {
		User       string `toml:"user" yaml:"user"`
		Host       string `toml:"host" yaml:"host"`
		Team       string `toml:"team" yaml:"team"`
		Port       int    `toml:"port" yaml:"port"`
		Credential string `toml:"credential" yaml:"credential"`
	}
)

// errUnsupportedFormat is returned for an unknown --format value.
var errUnsupportedFormat = errors.New("unsupported format (want text, toml or yaml)")

// newConfigCommand creates the `matterhorn config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect matterhorn configuration",
		Long: `Inspect matterhorn configuration.

Settings live in the [mattermost] section of config.ini:

  [mattermost]
  user = alice
  host = chat.example.com
  team = engineering
  port = 443
  passcmd = pass show mattermost`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var (
		format string
		reveal bool
	)
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show the resolved configuration.

The credential is masked unless --reveal is given. When passcmd is set, the
command is run to obtain it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app, format, reveal)
		},
	}
	showCmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, toml or yaml")
	showCmd.Flags().BoolVar(&reveal, "reveal", false, "print the credential instead of masking it")
	cfgCmd.AddCommand(showCmd)

	var selectedOnly bool
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "List configuration file locations in search order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd, app, selectedOnly)
		},
	}
	pathCmd.Flags().BoolVar(&selectedOnly, "selected", false, "print only the file that would be used")
	cfgCmd.AddCommand(pathCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Resolve the configuration and check its values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkConfig(cmd, app)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, format string, reveal bool) error {
	switch format {
	case formatText, formatTOML, formatYAML:
	default:
		return fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}

	opts := app.loadOptions()
	cfg, path, err := app.Config.ResolveWithPath(opts)
	if err != nil {
		return app.failResolution(cmd, err)
	}

	credential := cfg.Credential
	if !reveal {
		credential = config.MaskCredential(credential)
	}
	doc := configDocument{Mattermost: mattermostDocument{
		User:       cfg.User,
		Host:       cfg.Host,
		Team:       cfg.Team,
		Port:       cfg.Port,
		Credential: credential,
	}}

	switch format {
	case formatTOML:
		out, err := toml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode configuration as TOML: %w", err)
		}
		_, err = app.stdout.Write(out)
		return err
	case formatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode configuration as YAML: %w", err)
		}
		_, err = app.stdout.Write(out)
		return err
	default:
		writeConfigText(app.stdout, path, doc.Mattermost)
		return nil
	}
}

func writeConfigText(w io.Writer, path string, m mattermostDocument) {
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), path)
	fmt.Fprintln(w)

	for _, kv := range [][2]string{
		{"user", m.User},
		{"host", m.Host},
		{"team", m.Team},
		{"port", strconv.Itoa(m.Port)},
		{"credential", m.Credential},
	} {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render(kv[0]), SuccessStyle.Render(kv[1]))
	}
}

func showConfigPath(cmd *cobra.Command, app *App, selectedOnly bool) error {
	opts := app.loadOptions()

	if selectedOnly {
		path, err := app.Config.Locate(opts)
		if err != nil {
			return app.failResolution(cmd, err)
		}
		fmt.Fprintln(app.stdout, path)
		return nil
	}

	selected := false
	for _, c := range app.Config.Candidates(opts) {
		switch {
		case c.Exists && !selected:
			selected = true
			fmt.Fprintf(app.stdout, "%s %s %s\n", SuccessStyle.Render("✓"), KeyStyle.Render(c.Path), SuccessStyle.Render("(selected)"))
		case c.Exists:
			fmt.Fprintf(app.stdout, "%s %s %s\n", SuccessStyle.Render("✓"), c.Path, SubtitleStyle.Render("(shadowed)"))
		default:
			fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("·"), SubtitleStyle.Render(c.Path))
		}
	}

	if !selected {
		fmt.Fprintln(app.stdout)
		fmt.Fprintln(app.stdout, WarningStyle.Render("No configuration file found."))
	}
	return nil
}

func checkConfig(cmd *cobra.Command, app *App) error {
	opts := app.loadOptions()
	cfg, path, err := app.Config.ResolveWithPath(opts)
	if err != nil {
		return app.failResolution(cmd, err)
	}

	if err := config.Lint(cfg, path); err != nil {
		fmt.Fprintf(app.stderr, "%s %s\n", ErrorStyle.Render("✗"), err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintf(app.stdout, "%s %s is valid\n", SuccessStyle.Render("✓"), KeyStyle.Render(path))

	if st := platform.DetectSandbox(); st != platform.SandboxNone {
		fmt.Fprintf(app.stderr, "%s running inside %s: passcmd runs in the sandbox; reach host tools with '%s <command>'\n",
			WarningStyle.Render("!"), st, platform.HostCommandPrefix(st))
	}
	return nil
}
