// Package tui provides the terminal user interface for projscope.
// This file contains layout-related constants and dimension calculations.
package tui

// Layout offsets - the space taken by fixed UI elements
const (
	// HeaderHeight accounts for the title line, its bottom border, and margin.
	HeaderHeight = 3

	// FilterBarHeight accounts for the field labels and boxed fields,
	// including their borders.
	FilterBarHeight = 5

	// FooterHeight accounts for the status bar and help bar.
	FooterHeight = 2

	// ContentWidthPadding is the horizontal padding around the results area.
	ContentWidthPadding = 4

	// ResultsMinLines is the minimum number of visible result rows.
	ResultsMinLines = 3

	// MinRowWidth keeps result rows readable on absurdly narrow terminals.
	MinRowWidth = 20
)

// resultsHeight returns how many project rows fit in the terminal.
func resultsHeight(termHeight int) int {
	h := termHeight - HeaderHeight - FilterBarHeight - FooterHeight
	if h < ResultsMinLines {
		h = ResultsMinLines
	}
	return h
}
