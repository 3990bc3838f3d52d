// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"

	"github.com/acw/matterhorn/internal/config"
	"github.com/acw/matterhorn/internal/credential"
)

// FromResolution wraps a configuration resolution failure with suggestions
// and the matching catalog entry. Errors that are not a
// *config.ResolutionError are wrapped without suggestions.
func FromResolution(err error) *ActionableError {
	if err == nil {
		return nil
	}

	ctx := NewErrorContext().WithOperation("load configuration").Wrap(err)

	var resErr *config.ResolutionError
	if !errors.As(err, &resErr) {
		return ctx.Build()
	}
	ctx.WithResource(resErr.Path)

	switch resErr.Kind {
	case config.KindNotFound:
		ctx.WithIssue(ConfigNotFoundId).
			WithSuggestion("Create ~/.config/matterhorn/config.ini with a [mattermost] section").
			WithSuggestion("Run 'matterhorn config path' to list every location checked")
	case config.KindIOFailure:
		ctx.WithIssue(ConfigUnreadableId).
			WithSuggestion("Check that the file is readable by the current user")
	case config.KindInvalidConfig:
		ctx.WithIssue(ConfigInvalidId)
		var parseErr *config.ParseError
		if errors.As(err, &parseErr) && parseErr.Field != "" {
			ctx.WithSuggestion("Check the '" + parseErr.Field + "' key in the [mattermost] section")
		} else {
			ctx.WithSuggestion("Make sure [mattermost] sets user, host, team, port and one of pass or passcmd")
		}
	case config.KindCommandFailed:
		ctx.WithIssue(CredentialCommandFailedId)
		var cmdErr *credential.CommandError
		if errors.As(err, &cmdErr) && cmdErr.CommandLine != "" {
			ctx.WithSuggestion("Run the passcmd yourself to see its output: " + cmdErr.CommandLine)
		}
		ctx.WithSuggestion("passcmd is split on whitespace without quoting; wrap complex commands in a script")
	}

	return ctx.Build()
}
