// Package season decides which puzzle year to scaffold.
package season

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/daydemir/aoc/internal/types"
)

// ResolveTargetYear picks the year to scaffold.
// An explicit year wins but must be a full year. Otherwise the year after the
// latest one on disk is used, or the current calendar year when none exists.
func ResolveTargetYear(explicit, latest *int, today time.Time) (int, error) {
	if explicit != nil {
		if err := types.ValidateYear(*explicit); err != nil {
			return 0, err
		}
		return *explicit, nil
	}
	if latest != nil {
		return *latest + 1, nil
	}
	return today.Year(), nil
}

// LatestYear returns the most recent year directory under solutionsRoot,
// or nil when there is none. A missing root is treated as empty.
func LatestYear(solutionsRoot string) (*int, error) {
	entries, err := os.ReadDir(solutionsRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", solutionsRoot, err)
	}

	var latest *int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		year, ok := types.ParseYear(entry.Name())
		if !ok {
			continue
		}
		if latest == nil || year > *latest {
			latest = &year
		}
	}
	return latest, nil
}
