package cli

import (
	"fmt"
	"path/filepath"

	"github.com/daydemir/aoc/internal/config"
	"github.com/daydemir/aoc/internal/display"
	"github.com/daydemir/aoc/internal/workspace"
)

// loadWorkspace finds the repository root and its validated config. With
// --config, the directory holding that file becomes the root.
func loadWorkspace() (string, *config.Config, error) {
	wsDir, err := workspace.Find()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	if cfgFile != "" {
		abs, err := filepath.Abs(cfgFile)
		if err != nil {
			return "", nil, err
		}
		wsDir = filepath.Dir(abs)
	}

	cfg, err := config.Load(wsDir, cfgFile)
	if err != nil {
		return "", nil, err
	}
	if err := cfg.Validate(); err != nil {
		return "", nil, err
	}
	return wsDir, cfg, nil
}

func newDisplay() *display.Display {
	return display.New(noColor)
}
