// SPDX-License-Identifier: MPL-2.0

package credential

import (
	"errors"
	"strings"
)

// ErrNoSource is returned when materializing the zero Source.
var ErrNoSource = errors.New("credential source is not set")

type (
	// Kind identifies which variant a Source holds.
	Kind int

	// Source is the unresolved credential: either a literal secret or a
	// command line whose output is the secret. The zero value holds neither.
	Source struct {
		kind  Kind
		value string
	}
)

const (
	// KindLiteral is a secret given verbatim with the "pass" key.
	KindLiteral Kind = iota + 1
	// KindCommand is a command line given with the "passcmd" key.
	KindCommand
)

// String returns the configuration key that produces the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "pass"
	case KindCommand:
		return "passcmd"
	default:
		return "unset"
	}
}

// Literal returns a Source that resolves to v unchanged.
func Literal(v string) Source {
	return Source{kind: KindLiteral, value: v}
}

// Command returns a Source that resolves to the first line printed by cmdLine.
func Command(cmdLine string) Source {
	return Source{kind: KindCommand, value: cmdLine}
}

// Kind reports which variant s holds.
func (s Source) Kind() Kind {
	return s.kind
}

// Value returns the literal secret or the raw command line.
func (s Source) Value() string {
	return s.value
}

// Materialize resolves s to a secret. Literal sources are returned as-is and
// never touch r. Command sources are split with Split, run through r, and
// truncated at the first newline of their standard output. Every failure of a
// command source is reported as a *CommandError.
func (s Source) Materialize(r Runner) (string, error) {
	switch s.kind {
	case KindLiteral:
		return s.value, nil
	case KindCommand:
		program, args, err := Split(s.value)
		if err != nil {
			return "", &CommandError{CommandLine: s.value, Cause: err}
		}

		stdout, err := r.Run(program, args)
		if err != nil {
			var cmdErr *CommandError
			if errors.As(err, &cmdErr) {
				cmdErr.CommandLine = s.value
				return "", cmdErr
			}
			return "", &CommandError{CommandLine: s.value, Program: program, Cause: err}
		}

		return firstLine(stdout), nil
	default:
		return "", ErrNoSource
	}
}

// firstLine returns s up to, but excluding, the first '\n'. Carriage returns
// and other trailing whitespace are kept.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
