// SPDX-License-Identifier: MPL-2.0

package config

import "os"

type (
	// FileSystem is the subset of filesystem access the resolver needs.
	FileSystem interface {
		// Exists reports whether path names an existing regular file.
		Exists(path string) bool
		// ReadFile returns the full contents of path.
		ReadFile(path string) ([]byte, error)
	}

	// OSFileSystem is the FileSystem backed by the os package.
	OSFileSystem struct{}
)

// Exists implements FileSystem.
func (OSFileSystem) Exists(path string) bool {
	return fileExists(path)
}

// ReadFile implements FileSystem.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
