// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/acw/matterhorn/internal/config"

	"github.com/charmbracelet/log"
)

type fakeProvider struct {
	cfg        config.Config
	path       string
	err        error
	candidates []config.Candidate

	gotOpts     []config.LoadOptions
	locateCalls int
}

func (f *fakeProvider) ResolveWithPath(opts config.LoadOptions) (config.Config, string, error) {
	f.gotOpts = append(f.gotOpts, opts)
	if f.err != nil {
		return config.Config{}, "", f.err
	}
	return f.cfg, f.path, nil
}

func (f *fakeProvider) Locate(opts config.LoadOptions) (string, error) {
	f.gotOpts = append(f.gotOpts, opts)
	f.locateCalls++
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

func (f *fakeProvider) Candidates(opts config.LoadOptions) []config.Candidate {
	f.gotOpts = append(f.gotOpts, opts)
	return f.candidates
}

// testApp returns an App around provider with captured output.
func testApp(provider ConfigProvider) (app *App, stdout, stderr *bytes.Buffer) {
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	app = NewApp(Dependencies{
		Config: provider,
		Logger: log.New(io.Discard),
		Stdout: stdout,
		Stderr: stderr,
	})
	return app, stdout, stderr
}

// runCommand executes the command tree with args and returns the error.
func runCommand(app *App, args ...string) error {
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestNewApp_Defaults(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{})
	if app.Config == nil {
		t.Error("expected a default ConfigProvider")
	}
	if app.Logger == nil {
		t.Fatal("expected a default logger")
	}
	if got := app.Logger.GetLevel(); got != log.WarnLevel {
		t.Errorf("default log level = %v, want %v", got, log.WarnLevel)
	}
	if app.Logger.GetPrefix() != "matterhorn" {
		t.Errorf("logger prefix = %q, want %q", app.Logger.GetPrefix(), "matterhorn")
	}
}

func TestNewApp_KeepsInjectedProvider(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{}
	app, _, _ := testApp(provider)
	if app.Config != provider {
		t.Error("NewApp replaced the injected provider")
	}
}
