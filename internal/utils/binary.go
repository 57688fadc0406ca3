package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LookupBinary finds an executable by name or path.
// Returns the resolved path and whether it exists.
func LookupBinary(binaryPath string) (string, bool) {
	if binaryPath == "" {
		return "", false
	}

	// Handle tilde prefix
	if strings.HasPrefix(binaryPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		binaryPath = filepath.Join(home, binaryPath[1:])
	}

	// Absolute or relative paths are checked directly
	if strings.ContainsRune(binaryPath, filepath.Separator) {
		info, err := os.Stat(binaryPath)
		if err != nil || info.IsDir() {
			return "", false
		}
		return binaryPath, true
	}

	path, err := exec.LookPath(binaryPath)
	if err != nil {
		return "", false
	}
	return path, true
}
