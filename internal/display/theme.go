package display

import (
	"fmt"

	"github.com/fatih/color"
)

// Status symbols
const (
	SymbolWarning = "⚠"
	SymbolCreated = "+"
)

// Theme holds all color functions for consistent styling
type Theme struct {
	// Status indicators
	Success func(a ...interface{}) string
	Error   func(a ...interface{}) string
	Warning func(a ...interface{}) string
	Info    func(a ...interface{}) string

	// Paths and other values called out inside a sentence
	Highlight func(a ...interface{}) string

	// Secondary detail such as created file paths
	Dim func(a ...interface{}) string
}

// DefaultTheme creates the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Success: enabled(color.FgGreen),
		Error:   enabled(color.FgRed),
		Warning: enabled(color.FgYellow),
		Info:    enabled(color.FgCyan),

		Highlight: enabled(color.FgCyan, color.Bold),

		Dim: enabled(color.FgHiBlack),
	}
}

// NoColorTheme creates a theme without colors (for --no-color flag or non-TTY)
func NoColorTheme() *Theme {
	identity := func(a ...interface{}) string {
		return fmt.Sprint(a...)
	}
	return &Theme{
		Success:   identity,
		Error:     identity,
		Warning:   identity,
		Info:      identity,
		Highlight: identity,
		Dim:       identity,
	}
}

// enabled builds a color func that ignores the package-level NoColor
// detection; the Display decides whether a colored theme is used at all.
func enabled(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}
