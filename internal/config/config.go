// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
)

const (
	// AppName is the application name used for configuration directories.
	AppName = "matterhorn"
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.ini"
	// SectionName is the INI section holding the server settings.
	SectionName = "mattermost"
)

// Config is the fully resolved configuration. Credential always holds the
// final secret: the literal "pass" value or the first line printed by "passcmd".
type Config struct {
	User       string
	Host       string
	Team       string
	Port       int
	Credential string
}

// String renders c for humans with the credential masked.
func (c Config) String() string {
	return fmt.Sprintf("%s@%s:%d team=%s credential=%s", c.User, c.Host, c.Port, c.Team, MaskCredential(c.Credential))
}

// MaskCredential hides a secret while still showing whether one is set.
func MaskCredential(secret string) string {
	if secret == "" {
		return "(empty)"
	}
	return "********"
}

// Resolve locates and resolves the configuration using the standard search
// path, the local filesystem and real child processes.
func Resolve() (Config, error) {
	return NewResolver(Dependencies{}).Resolve(LoadOptions{})
}
