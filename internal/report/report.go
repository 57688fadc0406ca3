// Package report tells the user what a scaffold run created.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/daydemir/aoc/internal/display"
	"github.com/daydemir/aoc/internal/scaffold"
)

// Reporter prints the outcome of a scaffold run
type Reporter struct {
	display *display.Display
	lister  Lister
}

// New creates a Reporter
func New(d *display.Display, lister Lister) *Reporter {
	if lister == nil {
		lister = NoLister{}
	}
	return &Reporter{display: d, lister: lister}
}

// Report prints a success line followed by a tree listing of each directory,
// or a short summary when no listing tool is available
func (r *Reporter) Report(ctx context.Context, paths scaffold.Paths) {
	r.display.Success("Success.")

	if r.lister.Available() {
		trees, err := r.trees(ctx, paths.List())
		if err == nil {
			r.display.Println("Created the following directories and files:")
			r.display.Println(trees)
			return
		}
		r.display.Warning(fmt.Sprintf("could not list created files: %v", err))
	}

	r.display.Printf("Created solution directory %s and starter solution files.\n", r.display.Highlight(paths.SolutionsDir))
	r.display.Printf("Created test directory %s and starter test files.\n", r.display.Highlight(paths.TestsDir))
}

func (r *Reporter) trees(ctx context.Context, dirs []string) (string, error) {
	listings := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		listing, err := r.lister.List(ctx, dir)
		if err != nil {
			return "", err
		}
		listings = append(listings, listing)
	}
	return strings.Join(listings, "\n"), nil
}
