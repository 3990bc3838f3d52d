// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned by Split for a command line with no words.
var ErrEmptyCommand = errors.New("empty command line")

// CommandError reports a credential command that could not be started or that
// exited unsuccessfully.
type CommandError struct {
	// CommandLine is the raw "passcmd" value.
	CommandLine string
	// Program is the first word of CommandLine, when there was one.
	Program string
	// Stderr holds whatever the command wrote to standard error.
	Stderr string
	// Cause is the error reported by the process layer.
	Cause error
}

// Error implements the error interface. Spawn failures carry the operating
// system text; non-zero exits name the program, the exit status and the first
// line of standard error.
func (e *CommandError) Error() string {
	var msg strings.Builder

	var exitErr *exec.ExitError
	if errors.As(e.Cause, &exitErr) && e.Program != "" {
		msg.WriteString(e.Program)
		msg.WriteString(": ")
	}
	if e.Cause != nil {
		msg.WriteString(e.Cause.Error())
	} else {
		msg.WriteString("command failed")
	}

	if detail := firstLine(strings.TrimSpace(e.Stderr)); detail != "" {
		msg.WriteString(": ")
		msg.WriteString(detail)
	}

	return msg.String()
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Split breaks cmdLine into a program and its arguments on runs of whitespace.
// Quotes and backslashes have no special meaning.
func Split(cmdLine string) (program string, args []string, err error) {
	fields := strings.Fields(cmdLine)
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return fields[0], fields[1:], nil
}
