package workspace

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/daydemir/aoc/internal/config"
)

var ErrConfigExists = errors.New("aoc config already exists (use --force to overwrite)")

// Find walks up from cwd looking for the aoc config file.
// Falls back to cwd when no config is found.
func Find() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindFrom(dir), nil
}

// FindFrom walks up from dir looking for the aoc config file
func FindFrom(dir string) string {
	start := dir
	for {
		if info, err := os.Stat(ConfigPath(dir)); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// ConfigPath returns the config file path for a workspace
func ConfigPath(workspaceDir string) string {
	return filepath.Join(workspaceDir, config.FileName)
}
