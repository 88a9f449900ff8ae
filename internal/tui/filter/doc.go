// Package filter provides the active-filter state for the project browser.
//
// The package encapsulates the sparse filter map handed between the TUI
// model and the filter bar, plus the pure helpers both sides share.
//
// # Main Types
//
//   - [Values]: sparse map of active filters; key absent means "no filter"
//   - [Key]: the closed set of filterable fields
//   - [Option] / [Options]: selectable entries for one field
//
// # State Changes
//
// All changes go through [Merge], which never mutates its input:
//
//	next := filter.Merge(values, filter.KeyNamespace, &opt.Value)
//	if !filter.Equal(next, values) {
//	    onChange(next)
//	}
//
// Passing a nil value to Merge removes the key entirely; absence, not a
// zero marker, is what denotes an inactive filter. [Equal] is structural
// equality and is what callers use to elide no-op updates, since Merge
// always allocates a fresh map.
//
// # Display Helpers
//
// [Selected] resolves the current selection for a field against its option
// list, treating stale values as unselected. [WidthHint] derives a field's
// display width from its longest option label.
package filter
