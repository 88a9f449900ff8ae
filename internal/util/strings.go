// Package util provides shared utility functions used across the codebase.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens a string to maxWidth visual columns, adding "…" when it
// was cut. It handles ANSI escape codes and wide characters, so styled
// project rows truncate cleanly.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return "…"
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}
