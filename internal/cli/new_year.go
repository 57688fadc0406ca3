package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/daydemir/aoc/internal/report"
	"github.com/daydemir/aoc/internal/scaffold"
	"github.com/daydemir/aoc/internal/season"
	"github.com/daydemir/aoc/internal/templates"
	"github.com/spf13/cobra"
)

var newYearVerbose bool

// now is swapped in tests
var now = time.Now

var newYearCmd = &cobra.Command{
	Use:   "new-year [year]",
	Short: "Scaffold solution and test stubs for a season",
	Long: `Create a solutions directory and a tests directory for a season, each
holding one starter file per day (1-25).

Without a year, the year after the latest one under the solutions root is
used, or the current year if there is none. Existing directories are fine,
but existing files are never overwritten: the command stops at the first file
that is already present.

Examples:
  aoc new-year
  aoc new-year 2024
  aoc new-year 2024 --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNewYear,
}

func init() {
	newYearCmd.Flags().BoolVarP(&newYearVerbose, "verbose", "v", false, "print each file as it is created")
	rootCmd.AddCommand(newYearCmd)
}

func runNewYear(cmd *cobra.Command, args []string) error {
	var explicit *int
	if len(args) == 1 {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: must be a number like 2024", args[0])
		}
		explicit = &year
	}

	wsDir, cfg, err := loadWorkspace()
	if err != nil {
		return err
	}
	solutionsRoot := cfg.SolutionsRoot(wsDir)

	var latest *int
	if explicit == nil {
		if latest, err = season.LatestYear(solutionsRoot); err != nil {
			return err
		}
	}
	year, err := season.ResolveTargetYear(explicit, latest, now())
	if err != nil {
		return err
	}

	renderer, err := templates.Load(cfg.TemplatesDir(wsDir))
	if err != nil {
		return err
	}

	d := newDisplay()
	s := scaffold.New(solutionsRoot, cfg.TestsRoot(wsDir), cfg.Files.Extension, renderer)
	if newYearVerbose {
		s.OnCreate = d.Created
	}

	paths, err := s.CreateYear(year)
	if err != nil {
		return err
	}

	lister := report.Detect(cfg.Report.TreeBinary, listingArgs(cfg.Report.TreeArgs, d.Colored()))
	report.New(d, lister).Report(cmd.Context(), paths)
	return nil
}

// listingArgs drops tree's -C flag when output is plain
func listingArgs(args []string, colored bool) []string {
	if colored {
		return args
	}
	plain := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "-C" {
			plain = append(plain, arg)
		}
	}
	return plain
}
