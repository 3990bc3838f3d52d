// SPDX-License-Identifier: MPL-2.0

package config

import (
	"strconv"

	"github.com/acw/matterhorn/internal/credential"

	"gopkg.in/ini.v1"
)

const (
	keyUser    = "user"
	keyHost    = "host"
	keyTeam    = "team"
	keyPort    = "port"
	keyPass    = "pass"
	keyPassCmd = "passcmd"
)

type (
	// ParsedConfig is the content of the [mattermost] section with the
	// credential not yet resolved.
	ParsedConfig struct {
		User       string
		Host       string
		Team       string
		Port       int
		Credential credential.Source
	}

	// ParseError describes why a configuration document was rejected.
	ParseError struct {
		// Field is the offending key, if the problem is tied to one.
		Field string
		// Message is the human-readable reason.
		Message string
		// Cause is the lower-level error, if any.
		Cause error
	}
)

// iniOptions keeps the reader close to a plain key = value format: '=' is the
// only delimiter, inline comments need a leading space, and single or double
// quotes and trailing backslashes are kept. ini.v1 always unwraps values
// enclosed in backticks or triple double quotes; that cannot be turned off.
// Values are read with Key.Value, never Key.String, so %(name)s is not
// expanded.
var iniOptions = ini.LoadOptions{
	KeyValueDelimiters:       "=",
	SpaceBeforeInlineComment: true,
	PreserveSurroundedQuote:  true,
	IgnoreContinuation:       true,
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse reads a configuration document. It requires the [mattermost] section
// with user, host, team and port (checked in that order) plus pass or
// passcmd. Values are accepted as written; only port is converted.
// Other sections and keys are ignored.
func Parse(raw []byte) (ParsedConfig, error) {
	file, err := ini.LoadSources(iniOptions, raw)
	if err != nil {
		return ParsedConfig{}, &ParseError{Message: "malformed configuration", Cause: err}
	}

	section, err := file.GetSection(SectionName)
	if err != nil {
		return ParsedConfig{}, &ParseError{Message: "missing section: " + SectionName}
	}

	var required [4]string
	for i, name := range []string{keyUser, keyHost, keyTeam, keyPort} {
		if !section.HasKey(name) {
			return ParsedConfig{}, &ParseError{Field: name, Message: "missing field: " + name}
		}
		required[i] = section.Key(name).Value()
	}

	port, err := strconv.Atoi(required[3])
	if err != nil {
		return ParsedConfig{}, &ParseError{Field: keyPort, Message: "invalid value for field: " + keyPort, Cause: err}
	}

	var source credential.Source
	switch {
	case section.HasKey(keyPassCmd):
		source = credential.Command(section.Key(keyPassCmd).Value())
	case section.HasKey(keyPass):
		source = credential.Literal(section.Key(keyPass).Value())
	default:
		return ParsedConfig{}, &ParseError{Message: "either pass or passcmd is required"}
	}

	return ParsedConfig{
		User:       required[0],
		Host:       required[1],
		Team:       required[2],
		Port:       port,
		Credential: source,
	}, nil
}
