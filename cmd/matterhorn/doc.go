// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for matterhorn.
//
// The command tree is built around an App composition root so that tests can
// swap the configuration provider and capture output. Only the `config`
// command group lives here; it resolves, prints and checks the matterhorn
// configuration file.
package cmd
