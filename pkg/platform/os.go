// SPDX-License-Identifier: MPL-2.0

package platform

// GOOS values that select a different configuration directory layout.
const (
	Windows = "windows"
	Darwin  = "darwin"
)
