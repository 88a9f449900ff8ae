// Package view provides the reusable view components for the projscope TUI.
//
// # Main Types
//
//   - [FilterBar]: the two-field filter control above the project list
//   - [Select]: a controlled dropdown bound to one filter key
//   - [SelectState]: widget-local dropdown state (open flag, cursor, input)
//
// # Controlled State
//
// The filter bar is a controlled component: the active-filter map is owned
// by the TUI model. The model hands the current map to the bar with
// SetValues before rendering, and the bar proposes replacements through
// OnChange. The bar and its dropdowns never keep a private copy of the
// selection; what a field displays is re-derived every render from the
// option lists and the current map. Only transient UI state — whether a
// dropdown is open, where its cursor sits, what has been typed into its
// filter input — lives inside the widgets.
//
// # Render Gate
//
// FilterBar.View caches the composed frame together with the values
// snapshot it was rendered from, and serves the cache until the values
// differ structurally or an input event touches dropdown state. Successive
// renders with unchanged filters cost a map comparison, not a recompose.
package view
