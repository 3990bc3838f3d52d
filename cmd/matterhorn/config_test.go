// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/acw/matterhorn/internal/config"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func resolvedProvider() *fakeProvider {
	return &fakeProvider{
		path: "/home/alice/.config/matterhorn/config.ini",
		cfg: config.Config{
			User:       "alice",
			Host:       "chat.example.com",
			Team:       "eng",
			Port:       8065,
			Credential: "hunter2",
		},
		candidates: []config.Candidate{
			{Path: "config.ini"},
			{Path: "/home/alice/.config/matterhorn/config.ini", Exists: true},
			{Path: "/etc/xdg/matterhorn/config.ini"},
			{Path: "/etc/matterhorn/config.ini", Exists: true},
		},
	}
}

func TestConfigShow_TextMasksCredential(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"/home/alice/.config/matterhorn/config.ini", "alice", "chat.example.com", "8065", "********"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hunter2") {
		t.Errorf("credential leaked without --reveal:\n%s", out)
	}
}

func TestConfigShow_Reveal(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "show", "--reveal"); err != nil {
		t.Fatalf("config show --reveal: %v", err)
	}
	if !strings.Contains(stdout.String(), "hunter2") {
		t.Errorf("--reveal should print the credential:\n%s", stdout.String())
	}
}

func TestConfigShow_TOML(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "show", "--format", "toml"); err != nil {
		t.Fatalf("config show --format toml: %v", err)
	}

	var doc configDocument
	if err := toml.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not TOML: %v\n%s", err, stdout.String())
	}
	if doc.Mattermost.Host != "chat.example.com" || doc.Mattermost.Port != 8065 {
		t.Errorf("unexpected document %+v", doc)
	}
	if doc.Mattermost.Credential != "********" {
		t.Errorf("credential = %q, want masked", doc.Mattermost.Credential)
	}
}

func TestConfigShow_YAMLReveal(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "show", "-f", "yaml", "--reveal"); err != nil {
		t.Fatalf("config show -f yaml: %v", err)
	}

	var doc configDocument
	if err := yaml.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout.String())
	}
	if doc.Mattermost.User != "alice" || doc.Mattermost.Credential != "hunter2" {
		t.Errorf("unexpected document %+v", doc)
	}
}

func TestConfigShow_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	provider := resolvedProvider()
	app, _, _ := testApp(provider)
	err := runCommand(app, "config", "show", "--format", "json")
	if !errors.Is(err, errUnsupportedFormat) {
		t.Fatalf("expected errUnsupportedFormat, got %v", err)
	}
	if len(provider.gotOpts) != 0 {
		t.Error("an invalid format must be rejected before resolving")
	}
}

func TestConfigShow_ResolutionFailure(t *testing.T) {
	t.Parallel()

	resErr := &config.ResolutionError{Kind: config.KindNotFound}
	app, stdout, stderr := testApp(&fakeProvider{err: resErr})

	err := runCommand(app, "config", "show")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected *ExitError with code 1, got %v", err)
	}
	if !errors.Is(err, config.ErrNotFound) {
		t.Errorf("exit error should wrap the resolution error, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be printed to stdout on failure:\n%s", stdout.String())
	}
	out := stderr.String()
	for _, want := range []string{"failed to load configuration: no configuration found", "matterhorn config path"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Error chain:") {
		t.Errorf("error chain should only appear with --verbose:\n%s", out)
	}
}

func TestConfigShow_ResolutionFailureVerbose(t *testing.T) {
	t.Parallel()

	cause := &config.ParseError{Field: "team", Message: "missing field: team"}
	resErr := &config.ResolutionError{Kind: config.KindInvalidConfig, Path: "config.ini", Cause: cause}
	app, _, stderr := testApp(&fakeProvider{err: resErr})

	if err := runCommand(app, "--verbose", "config", "show"); err == nil {
		t.Fatal("expected an error")
	}
	out := stderr.String()
	for _, want := range []string{"invalid configuration in config.ini: missing field: team", "Error chain:", "File: config.ini", "'team'"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr missing %q:\n%s", want, out)
		}
	}
}

func TestConfigPath_ListsCandidates(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "path"); err != nil {
		t.Fatalf("config path: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), stdout.String())
	}
	if !strings.Contains(lines[1], "(selected)") {
		t.Errorf("second candidate should be selected: %q", lines[1])
	}
	if !strings.Contains(lines[3], "(shadowed)") {
		t.Errorf("system file should be shadowed: %q", lines[3])
	}
	if strings.Contains(lines[0], "selected") || strings.Contains(lines[2], "selected") {
		t.Errorf("missing candidates must not be selected:\n%s", stdout.String())
	}
}

func TestConfigPath_NoneFound(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(&fakeProvider{candidates: []config.Candidate{{Path: "config.ini"}}})
	if err := runCommand(app, "config", "path"); err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.Contains(stdout.String(), "No configuration file found.") {
		t.Errorf("expected a not-found note:\n%s", stdout.String())
	}
}

func TestConfigPath_Selected(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "path", "--selected"); err != nil {
		t.Fatalf("config path --selected: %v", err)
	}
	if got := stdout.String(); got != "/home/alice/.config/matterhorn/config.ini\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestConfigCheck_Valid(t *testing.T) {
	t.Parallel()

	app, stdout, _ := testApp(resolvedProvider())
	if err := runCommand(app, "config", "check"); err != nil {
		t.Fatalf("config check: %v", err)
	}
	if !strings.Contains(stdout.String(), "is valid") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestConfigCheck_LintFailure(t *testing.T) {
	t.Parallel()

	provider := resolvedProvider()
	provider.cfg.Port = 70000
	app, _, stderr := testApp(provider)

	err := runCommand(app, "config", "check")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected *ExitError with code 1, got %v", err)
	}
	out := stderr.String()
	if !strings.Contains(out, provider.path) || !strings.Contains(out, "port") {
		t.Errorf("lint failure should name the file and field:\n%s", out)
	}
}

func TestConfigShowAndCheck_SearchOnce(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"config", "show"}, {"config", "check"}} {
		provider := resolvedProvider()
		app, stdout, _ := testApp(provider)
		if err := runCommand(app, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if provider.locateCalls != 0 {
			t.Errorf("%v: Locate called %d times; the path must come from ResolveWithPath", args, provider.locateCalls)
		}
		if len(provider.gotOpts) != 1 {
			t.Errorf("%v: provider called %d times, want 1", args, len(provider.gotOpts))
		}
		if !strings.Contains(stdout.String(), provider.path) {
			t.Errorf("%v: output should name the resolved file:\n%s", args, stdout.String())
		}
	}
}
