// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/acw/matterhorn/pkg/platform"
)

// SearchPathFunc lists the platform configuration files for appName and
// fileName, highest priority first. The list may be empty.
type SearchPathFunc func(appName, fileName string) []string

// ConfigSearchPaths returns the per-user and system configuration file paths
// for appName/fileName, following the conventions of the running platform:
//
//   - Linux and other Unix-likes: $XDG_CONFIG_HOME (default ~/.config), then
//     each entry of $XDG_CONFIG_DIRS (default /etc/xdg).
//   - macOS: as above, with ~/Library/Application Support right after the
//     per-user XDG directory.
//   - Windows: %APPDATA% (default %USERPROFILE%\AppData\Roaming).
//
// Relative directories are ignored, as are directories that cannot be
// determined (for example when no home directory is known).
//
//nolint:revive // ConfigSearchPaths reads better than SearchPaths at call sites
func ConfigSearchPaths(appName, fileName string) []string {
	dirs := configSearchDirs(runtime.GOOS)

	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir, appName, fileName))
	}
	return paths
}

// SystemConfigPath returns the fixed system-wide fallback configuration file.
func SystemConfigPath() string {
	return systemConfigPath(runtime.GOOS)
}

func systemConfigPath(goos string) string {
	if goos == platform.Windows {
		programData := os.Getenv("PROGRAMDATA")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return filepath.Join(programData, AppName, ConfigFileName)
	}
	return filepath.Join("/etc", AppName, ConfigFileName)
}

func configSearchDirs(goos string) []string {
	if goos == platform.Windows {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			profile := os.Getenv("USERPROFILE")
			if profile == "" {
				return nil
			}
			appData = filepath.Join(profile, "AppData", "Roaming")
		}
		return []string{appData}
	}

	var dirs []string
	if home := xdgConfigHome(); home != "" {
		dirs = append(dirs, home)
	}
	if goos == platform.Darwin {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Application Support"))
		}
	}
	return append(dirs, xdgConfigDirs()...)
}

func xdgConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(dir) {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}

func xdgConfigDirs() []string {
	raw := os.Getenv("XDG_CONFIG_DIRS")
	if raw == "" {
		return []string{"/etc/xdg"}
	}

	var dirs []string
	for _, dir := range filepath.SplitList(raw) {
		if filepath.IsAbs(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
