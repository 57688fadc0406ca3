package utils

import (
	"fmt"
	"path/filepath"

	"github.com/daydemir/aoc/internal/types"
)

// BuildYearDir builds the directory path for one season under a root
// Format: {root}/{year}
func BuildYearDir(root string, year int) string {
	return filepath.Join(root, types.YearID(year))
}

// BuildSolutionPath builds the path of a day's solution file
// Format: {yearDir}/{NN}.{ext}
func BuildSolutionPath(yearDir string, day int, ext string) string {
	return filepath.Join(yearDir, fmt.Sprintf("%s.%s", types.PadDay(day), ext))
}

// BuildTestPath builds the path of a day's test file
// Format: {yearDir}/test_{year}_{NN}.{ext}
// The year is part of the name so test ids stay unique across seasons.
func BuildTestPath(yearDir string, year, day int, ext string) string {
	return filepath.Join(yearDir, fmt.Sprintf("test_%d_%s.%s", year, types.PadDay(day), ext))
}
