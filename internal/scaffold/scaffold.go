// Package scaffold creates the solution and test stubs for a puzzle season.
//
// Files are created exclusively: an existing file is never overwritten. The
// batch is not transactional, so a failure on one file leaves every file
// written before it in place.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/daydemir/aoc/internal/templates"
	"github.com/daydemir/aoc/internal/types"
	"github.com/daydemir/aoc/internal/utils"
)

// ErrFileExists is returned when a target file is already present
var ErrFileExists = errors.New("file already exists")

// Paths holds the season directories a scaffold was written to
type Paths struct {
	SolutionsDir string
	TestsDir     string
}

// List returns the directories in report order
func (p Paths) List() []string {
	return []string{p.SolutionsDir, p.TestsDir}
}

// Scaffolder writes season stubs below a solutions root and a tests root
type Scaffolder struct {
	SolutionsRoot string
	TestsRoot     string
	Extension     string
	Templates     templates.Renderer

	// OnCreate, when set, is called after each file is written
	OnCreate func(path string)
}

// New creates a Scaffolder
func New(solutionsRoot, testsRoot, ext string, renderer templates.Renderer) *Scaffolder {
	return &Scaffolder{
		SolutionsRoot: solutionsRoot,
		TestsRoot:     testsRoot,
		Extension:     ext,
		Templates:     renderer,
	}
}

// CreateYear sets up solution and test directories for a season and fills
// them with one stub per day. Pre-existing directories are fine; pre-existing
// files are not.
func (s *Scaffolder) CreateYear(year int) (Paths, error) {
	if err := types.ValidateYear(year); err != nil {
		return Paths{}, err
	}

	paths := Paths{
		SolutionsDir: utils.BuildYearDir(s.SolutionsRoot, year),
		TestsDir:     utils.BuildYearDir(s.TestsRoot, year),
	}
	for _, dir := range paths.List() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Paths{}, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for _, day := range types.Days() {
		solution, err := s.Templates.RenderSolution(templates.SolutionData{Year: year, Day: day})
		if err != nil {
			return Paths{}, fmt.Errorf("day %d: %w", day, err)
		}
		if err := s.create(utils.BuildSolutionPath(paths.SolutionsDir, day, s.Extension), solution); err != nil {
			return Paths{}, err
		}

		test, err := s.Templates.RenderTest(templates.TestData{
			Year:          year,
			Day:           day,
			ZeroPaddedDay: types.PadDay(day),
		})
		if err != nil {
			return Paths{}, fmt.Errorf("day %d: %w", day, err)
		}
		if err := s.create(utils.BuildTestPath(paths.TestsDir, year, day, s.Extension), test); err != nil {
			return Paths{}, err
		}
	}

	return paths, nil
}

func (s *Scaffolder) create(path, content string) error {
	if err := createExclusive(path, content); err != nil {
		return err
	}
	if s.OnCreate != nil {
		s.OnCreate(path)
	}
	return nil
}

// createExclusive writes content to a new file, failing if path exists
func createExclusive(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
