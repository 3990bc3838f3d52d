// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigNotFoundId Id = iota + 1
	ConfigUnreadableId
	ConfigInvalidId
	CredentialCommandFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

// Render renders the issue as terminal Markdown using the glamour style at
// stylePath (a built-in name such as "dark" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No configuration found!

matterhorn looked for a ` + "`config.ini`" + ` and found none.

## Search locations (in order of precedence):
1. ` + "`./config.ini`" + ` in the current directory
2. ` + "`$XDG_CONFIG_HOME/matterhorn/config.ini`" + ` (default ` + "`~/.config`" + `)
3. ` + "`~/Library/Application Support/matterhorn/config.ini`" + ` (macOS only)
4. ` + "`$XDG_CONFIG_DIRS/matterhorn/config.ini`" + ` (default ` + "`/etc/xdg`" + `)
5. ` + "`/etc/matterhorn/config.ini`" + `

## Things you can try:
- Create ` + "`~/.config/matterhorn/config.ini`" + ` with a minimal section:
~~~ini
[mattermost]
user = alice
host = chat.example.com
team = engineering
port = 443
passcmd = pass show mattermost
~~~

- List the exact paths checked on this machine:
~~~
$ matterhorn config path
~~~`,
		extLinks: []HttpLink{"https://specifications.freedesktop.org/basedir-spec/latest/"},
	}

	configUnreadableIssue = &Issue{
		id: ConfigUnreadableId,
		mdMsg: `
# Configuration file unreadable!

A configuration file exists but could not be read. matterhorn does not
fall back to the next location when this happens.

## Things you can try:
- Check the file permissions:
~~~
$ ls -l "$(matterhorn config path --selected)"
~~~

- Make sure the path is a regular file you own`,
	}

	configInvalidIssue = &Issue{
		id: ConfigInvalidId,
		mdMsg: `
# Invalid configuration!

The ` + "`[mattermost]`" + ` section must define ` + "`user`, `host`, `team`" + ` and an integer
` + "`port`" + `, plus one of ` + "`pass`" + ` or ` + "`passcmd`" + `.

## Things you can try:
- Key and section names are case-sensitive: use ` + "`[mattermost]`" + `, not ` + "`[Mattermost]`" + `
- Every setting is written as ` + "`key = value`" + `
- ` + "`port`" + ` must be a plain decimal number such as ` + "`443`" + `
- Inline comments need a space before ` + "`#`" + ` or ` + "`;`",
	}

	credentialCommandFailedIssue = &Issue{
		id: CredentialCommandFailedId,
		mdMsg: `
# Credential command failed!

The ` + "`passcmd`" + ` command could not be started or exited with an error.

## How passcmd runs:
- The value is split on whitespace; quotes and backslashes are not interpreted
- The first word is looked up on ` + "`PATH`" + `
- Only the first line of its standard output is used

## Things you can try:
- Run the command yourself and check that it prints the secret
- Avoid paths containing spaces, or wrap the command in a small script
- Use shell features through ` + "`sh -c`" + ` in a script, since passcmd is not run by a shell`,
		extLinks: []HttpLink{"https://www.passwordstore.org/"},
	}

	issues = []*Issue{
		configNotFoundIssue,
		configUnreadableIssue,
		configInvalidIssue,
		credentialCommandFailedIssue,
	}
)

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	idx := slices.IndexFunc(issues, func(i *Issue) bool { return i.id == id })
	if idx < 0 {
		return nil
	}
	return issues[idx]
}
