package utils

import "strings"

// NormalizeExtension strips surrounding whitespace and leading dots
// Example: ".py" -> "py"
func NormalizeExtension(ext string) string {
	return strings.TrimLeft(strings.TrimSpace(ext), ".")
}
