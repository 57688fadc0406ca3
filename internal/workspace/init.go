package workspace

import (
	"fmt"
	"os"
)

// Init writes a default config into dir and returns its path
func Init(dir string, force bool) (string, error) {
	path := ConfigPath(dir)

	if _, err := os.Stat(path); err == nil && !force {
		return "", ErrConfigExists
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

const defaultConfig = `# aoc configuration
paths:
  solutions_root: adventofcode/solutions   # one directory per year below this
  tests_root: tests

files:
  extension: py

templates:
  dir: .aoc/templates      # solution.tmpl / test.tmpl here override the built-ins

report:
  tree_binary: tree        # optional, used to list created files
  tree_args:
    - -C
    - --noreport
`
