// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"

	"github.com/acw/matterhorn/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed lint_schema.cue
var lintSchema string

// Lint checks a resolved configuration for values that resolve but are
// unlikely to work: empty identity fields, an empty credential, or a port
// outside 1-65535. The error names path and the offending fields.
func Lint(cfg Config, path string) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(lintSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile lint schema: %w", schemaValue.Err())
	}

	userValue := ctx.Encode(map[string]any{
		keyUser:      cfg.User,
		keyHost:      cfg.Host,
		keyTeam:      cfg.Team,
		keyPort:      cfg.Port,
		"credential": cfg.Credential,
	})
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Mattermost"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cueutil.FormatError(err, path)
	}

	return nil
}
