// SPDX-License-Identifier: MPL-2.0

package config

import (
	"io"

	"github.com/acw/matterhorn/internal/credential"

	"github.com/charmbracelet/log"
)

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath, when set, replaces the search path with this single file.
		ConfigFilePath string
	}

	// Dependencies are the collaborators used by a Resolver. Nil fields are
	// replaced with production defaults by NewResolver.
	Dependencies struct {
		FS          FileSystem
		Runner      credential.Runner
		SearchPaths SearchPathFunc
		Logger      *log.Logger
	}

	// Candidate is one entry of the search path.
	Candidate struct {
		Path   string
		Exists bool
	}

	// Resolver locates, parses and resolves configuration files.
	// It holds no state between calls.
	Resolver struct {
		fs          FileSystem
		runner      credential.Runner
		searchPaths SearchPathFunc
		logger      *log.Logger
	}
)

// NewResolver creates a Resolver from deps, filling in defaults.
func NewResolver(deps Dependencies) *Resolver {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.FS == nil {
		deps.FS = OSFileSystem{}
	}
	if deps.Runner == nil {
		deps.Runner = credential.NewExecRunner(deps.Logger)
	}
	if deps.SearchPaths == nil {
		deps.SearchPaths = ConfigSearchPaths
	}

	return &Resolver{
		fs:          deps.FS,
		runner:      deps.Runner,
		searchPaths: deps.SearchPaths,
		logger:      deps.Logger,
	}
}

// CandidatePaths returns the files Resolve considers, highest priority first:
// ./config.ini, the platform search paths, then SystemConfigPath. An explicit
// opts.ConfigFilePath is the only candidate when set.
func (r *Resolver) CandidatePaths(opts LoadOptions) []string {
	if opts.ConfigFilePath != "" {
		return []string{opts.ConfigFilePath}
	}

	paths := []string{ConfigFileName}
	paths = append(paths, r.searchPaths(AppName, ConfigFileName)...)
	return append(paths, SystemConfigPath())
}

// Candidates reports every candidate path together with whether it exists.
func (r *Resolver) Candidates(opts LoadOptions) []Candidate {
	paths := r.CandidatePaths(opts)
	candidates := make([]Candidate, len(paths))
	for i, p := range paths {
		candidates[i] = Candidate{Path: p, Exists: r.fs.Exists(p)}
	}
	return candidates
}

// Locate returns the first existing candidate path, or a *ResolutionError of
// kind KindNotFound.
func (r *Resolver) Locate(opts LoadOptions) (string, error) {
	for _, p := range r.CandidatePaths(opts) {
		if r.fs.Exists(p) {
			r.logger.Debug("using configuration file", "path", p)
			return p, nil
		}
		r.logger.Debug("configuration candidate missing", "path", p)
	}
	return "", &ResolutionError{Kind: KindNotFound}
}

// Resolve locates the first existing configuration file, parses it and
// materializes its credential. Running a passcmd blocks until the command
// exits. On failure the zero Config and a *ResolutionError are returned.
func (r *Resolver) Resolve(opts LoadOptions) (Config, error) {
	cfg, _, err := r.ResolveWithPath(opts)
	return cfg, err
}

// ResolveWithPath is Resolve that also returns the file the Config was read
// from. The search runs once, so the path always names the parsed file. On
// failure the path is empty; the *ResolutionError carries it instead.
func (r *Resolver) ResolveWithPath(opts LoadOptions) (Config, string, error) {
	path, err := r.Locate(opts)
	if err != nil {
		return Config{}, "", err
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return Config{}, "", &ResolutionError{Kind: KindIOFailure, Path: path, Cause: err}
	}

	parsed, err := Parse(data)
	if err != nil {
		return Config{}, "", &ResolutionError{Kind: KindInvalidConfig, Path: path, Cause: err}
	}

	r.logger.Debug("resolving credential", "path", path, "source", parsed.Credential.Kind())
	secret, err := parsed.Credential.Materialize(r.runner)
	if err != nil {
		return Config{}, "", &ResolutionError{Kind: KindCommandFailed, Path: path, Cause: err}
	}

	return Config{
		User:       parsed.User,
		Host:       parsed.Host,
		Team:       parsed.Team,
		Port:       parsed.Port,
		Credential: secret,
	}, path, nil
}
