// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "config.ini"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		originalErr := errors.New("some error")
		err := FormatError(originalErr, "config.ini")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "config.ini") {
			t.Errorf("error should contain filepath, got: %v", err)
		}
		if !errors.Is(err, originalErr) {
			t.Errorf("error should wrap the original, got: %v", err)
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			t.Errorf("non-CUE error must not become a *ValidationError, got: %v", err)
		}
		if got, want := err.Error(), "config.ini: some error"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		t.Parallel()

		ctx := cuecontext.New()
		schema := ctx.CompileString(`#S: { port: int & <=65535 }`)
		value := schema.LookupPath(cue.ParsePath("#S")).Unify(ctx.Encode(map[string]any{"port": 70000}))

		err := FormatError(value.Validate(cue.Concrete(true)), "/etc/matterhorn/config.ini")

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %T: %v", err, err)
		}
		if len(ve.Fields) == 0 {
			t.Fatal("expected at least one field error")
		}
		if ve.Fields[0].Path != "port" {
			t.Errorf("path = %q, want %q", ve.Fields[0].Path, "port")
		}
		if !strings.HasPrefix(err.Error(), "/etc/matterhorn/config.ini: port: ") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"port"}, expected: "port"},
		{name: "nested path", path: []string{"server", "host"}, expected: "server.host"},
		{name: "array index", path: []string{"servers", "0", "port"}, expected: "servers[0].port"},
		{name: "definition dropped", path: []string{"#Mattermost", "user"}, expected: "user"},
		{name: "leading numeric key", path: []string{"0", "x"}, expected: "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("single field", func(t *testing.T) {
		t.Parallel()

		err := &ValidationError{
			FilePath: "config.ini",
			Fields:   []FieldError{{Path: "port", Message: "out of bound"}},
		}
		if got, want := err.Error(), "config.ini: port: out of bound"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("several fields", func(t *testing.T) {
		t.Parallel()

		err := &ValidationError{
			FilePath: "config.ini",
			Fields: []FieldError{
				{Path: "user", Message: "empty"},
				{Message: "general"},
			},
		}
		want := "config.ini: validation failed:\n  user: empty\n  general"
		if got := err.Error(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
