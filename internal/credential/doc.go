// SPDX-License-Identifier: MPL-2.0

// Package credential turns the password setting of a matterhorn configuration
// into the secret that is handed to the rest of the application.
//
// A Source is either a literal value (the "pass" key) or a command line (the
// "passcmd" key). Command lines are split on whitespace only: there is no
// quoting, escaping or globbing, so a program path containing spaces cannot be
// expressed. The command runs once, with an empty standard input and no
// timeout, and only the first line of its standard output is kept.
package credential
