// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

type (
	// FieldError is a single validation failure.
	FieldError struct {
		// Path is the JSON-style path to the value (e.g., "servers[0].port").
		// Empty when the failure is not tied to a field.
		Path string
		// Message is the validation error message without the path.
		Message string
	}

	// ValidationError collects the CUE validation failures for one file.
	ValidationError struct {
		FilePath string
		Fields   []FieldError
	}
)

// Error implements the error interface.
//
// One failure renders as "<file>: <path>: <message>"; several render as a
// "validation failed" header followed by one indented line per failure.
func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Path != "" {
			lines = append(lines, f.Path+": "+f.Message)
		} else {
			lines = append(lines, f.Message)
		}
	}

	if len(lines) == 1 {
		return fmt.Sprintf("%s: %s", e.FilePath, lines[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.FilePath, strings.Join(lines, "\n  "))
}

// FormatError converts a CUE error into a *ValidationError for filePath.
// Definition names (path elements starting with '#') are dropped so paths
// read as the user wrote them. Non-CUE errors are wrapped with the file path.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	var cueErr cueerrors.Error
	if !errors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	cueErrors := cueerrors.Errors(err)

	ve := &ValidationError{FilePath: filePath}
	for _, e := range cueErrors {
		rawPath := cueerrors.Path(e)
		pathStr := formatPath(rawPath)
		msg := e.Error()

		// CUE sometimes includes the path in the message itself
		for _, prefix := range []string{strings.Join(rawPath, "."), pathStr} {
			if prefix != "" && strings.HasPrefix(msg, prefix+":") {
				msg = strings.TrimSpace(strings.TrimPrefix(msg, prefix+":"))
				break
			}
		}

		ve.Fields = append(ve.Fields, FieldError{Path: pathStr, Message: msg})
	}

	return ve
}

// formatPath converts a CUE error path to JSON-path notation. CUE provides
// paths as flat string slices (["servers", "0", "port"]) where numeric
// elements are list indices; the result is "servers[0].port".
func formatPath(path []string) string {
	var result strings.Builder
	for _, part := range path {
		if strings.HasPrefix(part, "#") {
			continue
		}

		if isIndex(part) && result.Len() > 0 {
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
			continue
		}

		if result.Len() > 0 {
			result.WriteString(".")
		}
		result.WriteString(part)
	}

	return result.String()
}

func isIndex(part string) bool {
	if part == "" {
		return false
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
