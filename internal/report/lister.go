package report

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/daydemir/aoc/internal/utils"
)

// Lister renders a directory tree as text
type Lister interface {
	// Available reports whether listings can be produced at all
	Available() bool
	// List returns the captured listing for path
	List(ctx context.Context, path string) (string, error)
}

// TreeLister shells out to a tree(1)-style binary and captures its stdout
type TreeLister struct {
	Binary string
	Args   []string
}

// Available reports true; a TreeLister is only built for a resolved binary
func (l *TreeLister) Available() bool { return true }

// List runs the binary with the configured args followed by path
func (l *TreeLister) List(ctx context.Context, path string) (string, error) {
	args := append(append([]string{}, l.Args...), path)
	cmd := exec.CommandContext(ctx, l.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("%s %s: %w", l.Binary, path, err)
		}
		return "", fmt.Errorf("%s %s: %w: %s", l.Binary, path, err, msg)
	}
	return stdout.String(), nil
}

// NoLister is used when no listing tool is installed
type NoLister struct{}

// Available reports false
func (NoLister) Available() bool { return false }

// List returns an empty listing
func (NoLister) List(context.Context, string) (string, error) { return "", nil }

// Detect checks once whether binary is installed and returns the matching Lister.
// A missing binary is not an error.
func Detect(binary string, args []string) Lister {
	path, ok := utils.LookupBinary(binary)
	if !ok {
		return NoLister{}
	}
	return &TreeLister{Binary: path, Args: args}
}
