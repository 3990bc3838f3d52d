// SPDX-License-Identifier: MPL-2.0

package config

// Provider resolves configuration from explicit options.
type Provider interface {
	ResolveWithPath(opts LoadOptions) (Config, string, error)
	Locate(opts LoadOptions) (string, error)
	Candidates(opts LoadOptions) []Candidate
}

// NewProvider creates a configuration provider backed by the local
// filesystem and real child processes, logging through deps.Logger.
func NewProvider(deps Dependencies) Provider {
	return NewResolver(deps)
}
