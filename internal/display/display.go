// Package display provides unified output formatting for the aoc CLI.
package display

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Display handles all CLI output
type Display struct {
	out     io.Writer
	theme   *Theme
	noColor bool
}

// New creates a Display writing to stdout
func New(noColor bool) *Display {
	return NewFor(os.Stdout, noColor)
}

// NewFor creates a Display writing to w, with color only when w is a terminal
// and NO_COLOR is unset
func NewFor(w io.Writer, noColor bool) *Display {
	return NewWithOptions(w, noColor || !IsTerminal(w) || os.Getenv("NO_COLOR") != "")
}

// NewWithOptions creates a Display with configuration
func NewWithOptions(out io.Writer, noColor bool) *Display {
	d := &Display{
		out:     out,
		noColor: noColor,
	}
	if noColor {
		d.theme = NoColorTheme()
	} else {
		d.theme = DefaultTheme()
	}
	return d
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colored reports whether this Display emits color codes
func (d *Display) Colored() bool {
	return !d.noColor
}

// Println writes a plain line
func (d *Display) Println(a ...interface{}) {
	fmt.Fprintln(d.out, a...)
}

// Printf writes formatted text
func (d *Display) Printf(format string, a ...interface{}) {
	fmt.Fprintf(d.out, format, a...)
}

// Success prints a message in the success color
func (d *Display) Success(message string) {
	d.Println(d.theme.Success(message))
}

// Error prints "Error: message" with the prefix in red
func (d *Display) Error(message string) {
	d.Println(d.theme.Error("Error:"), message)
}

// Warning prints a warning message with yellow triangle
func (d *Display) Warning(message string) {
	d.Println(d.theme.Warning(SymbolWarning), message)
}

// Created prints a dimmed line for a newly written file
func (d *Display) Created(path string) {
	d.Println(d.theme.Success(SymbolCreated), d.theme.Dim(path))
}

// Info prints a labelled value
func (d *Display) Info(label, message string) {
	d.Println(d.theme.Info(label+":"), message)
}

// Highlight returns s styled for emphasis inside a sentence
func (d *Display) Highlight(s string) string {
	return d.theme.Highlight(s)
}
