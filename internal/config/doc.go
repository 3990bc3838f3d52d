// SPDX-License-Identifier: MPL-2.0

// Package config locates, parses and resolves the matterhorn configuration file.
//
// The file is an INI document with a required [mattermost] section:
//
//	[mattermost]
//	user = alice
//	host = chat.example.com
//	team = engineering
//	port = 443
//	pass = literal secret          ; or:
//	passcmd = pass show mattermost ; wins over pass when both are set
//
// Resolution searches an ordered list of candidate paths and uses the first
// file that exists: ./config.ini, then the per-user and system configuration
// directories of the platform (XDG on Linux and other Unix-likes, with
// ~/Library/Application Support added on macOS, %APPDATA% on Windows), then
// /etc/matterhorn/config.ini (%PROGRAMDATA%\matterhorn\config.ini on Windows).
// Files are never merged.
//
// When passcmd is used, the command runs synchronously during resolution with
// no timeout; a command that never exits blocks resolution forever.
package config
