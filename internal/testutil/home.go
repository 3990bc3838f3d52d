// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetHomeDir sets the appropriate HOME environment variable based on platform
// and returns a cleanup function to restore the original value.
//
// Platform handling:
//   - Windows: Sets USERPROFILE
//   - Linux/macOS: Sets HOME
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
//	    // Test code that uses the home directory...
//	}
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}

// IsolateConfigDirs points every per-user and system configuration directory
// variable at fresh directories under a temporary root, so tests never see the
// developer's real configuration. It returns the fake home directory; the
// system XDG directory is home/xdg-system and APPDATA is home/AppData/Roaming.
// Everything is restored when the test ends.
func IsolateConfigDirs(t testing.TB) string {
	t.Helper()

	home := t.TempDir()
	t.Cleanup(SetHomeDir(t, home))
	t.Cleanup(MustUnsetenv(t, "XDG_CONFIG_HOME"))
	t.Cleanup(MustSetenv(t, "XDG_CONFIG_DIRS", filepath.Join(home, "xdg-system")))
	t.Cleanup(MustSetenv(t, "APPDATA", filepath.Join(home, "AppData", "Roaming")))
	return home
}
