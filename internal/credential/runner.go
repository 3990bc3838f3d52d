// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"bytes"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// Runner executes a program with no standard input and returns what it
	// wrote to standard output.
	Runner interface {
		Run(program string, args []string) (stdout string, err error)
	}

	// ExecRunner runs programs as child processes using os/exec. The call
	// blocks until the child exits; there is no timeout.
	ExecRunner struct {
		// Logger receives the command line at debug level. May be nil.
		Logger *log.Logger
	}
)

// NewExecRunner creates an ExecRunner that logs to logger.
func NewExecRunner(logger *log.Logger) *ExecRunner {
	return &ExecRunner{Logger: logger}
}

// Run implements Runner. Start failures and non-zero exits are returned as a
// *CommandError carrying the captured standard error.
func (r *ExecRunner) Run(program string, args []string) (string, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("running credential command", "argv", displayArgv(program, args))

	cmd := exec.Command(program, args...)

	// Stdin is left nil so the child reads from the null device.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		logger.Debug("credential command failed", "program", program, "exit_code", exitCode, "error", err)
		return "", &CommandError{
			Program: program,
			Stderr:  stderr.String(),
			Cause:   err,
		}
	}

	return stdout.String(), nil
}

// displayArgv renders program and args as a shell-quoted string for logs.
// Words that cannot be quoted are shown with %q-style fallbacks.
func displayArgv(program string, args []string) string {
	words := make([]string, 0, len(args)+1)
	for _, w := range append([]string{program}, args...) {
		quoted, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			quoted = `"` + strings.ReplaceAll(w, `"`, `\"`) + `"`
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " ")
}
