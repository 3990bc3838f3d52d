// SPDX-License-Identifier: MPL-2.0

// Package platform provides small cross-platform helpers: GOOS name constants
// and detection of application sandboxes (Flatpak, Snap) that change which
// programs a credential command can reach.
package platform
