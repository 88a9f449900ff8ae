package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tarrant/projscope/internal/tui/filter"
	"github.com/tarrant/projscope/internal/tui/styles"
)

// Per-field width scale factors. Empirically tuned per field, not derived:
// namespace labels tend to be short organization slugs, project type labels
// run longer and read fine slightly compressed.
const (
	namespaceWidthScale   = 1
	projectTypeWidthScale = 2
)

// Lookup resolves a display string for a fixed text key ("filter",
// "namespace", "project_type"). The filter bar treats the text catalog as an
// opaque collaborator.
type Lookup func(key string) string

// FilterBar is the two-field filter control for the project list. It is
// fully controlled: the active-filter map is owned by the caller, handed in
// through SetValues, and every change the user makes is proposed back
// through OnChange as a complete replacement map. The bar never mutates the
// map it was given and holds no selection state of its own.
type FilterBar struct {
	// OnChange receives the replacement filter map after a selection or
	// clear. It is invoked at most once per key event, synchronously, and
	// only when the replacement differs structurally from the current map.
	OnChange func(filter.Values)

	fields []*Select
	state  map[filter.Key]*SelectState
	focus  int
	icon   string

	// Externally owned filter state, replaced wholesale via SetValues.
	values filter.Values

	// Render gate: the last rendered frame and the values snapshot it was
	// rendered from. View returns the cached frame until the values change
	// or a key event touches the widget-local UI state.
	cachedFrame  string
	cachedValues filter.Values
	cacheValid   bool
	renderCount  int
}

// NewFilterBar builds the filter bar from the two option lists. Field labels
// come from the text catalog; field widths are derived from the option
// labels through the width heuristic.
func NewFilterBar(lookup Lookup, namespaces, projectTypes filter.Options, onChange func(filter.Values)) *FilterBar {
	fields := []*Select{
		{
			Key:     filter.KeyNamespace,
			Label:   lookup("namespace"),
			Options: namespaces,
			Width:   filter.WidthHint(namespaces, namespaceWidthScale),
		},
		{
			Key:     filter.KeyProjectType,
			Label:   lookup("project_type"),
			Options: projectTypes,
			Width:   filter.WidthHint(projectTypes, projectTypeWidthScale),
		},
	}

	state := make(map[filter.Key]*SelectState, len(fields))
	for _, f := range fields {
		state[f.Key] = NewSelectState()
	}

	return &FilterBar{
		OnChange: onChange,
		fields:   fields,
		state:    state,
		icon:     lookup("filter"),
	}
}

// SetValues hands the bar its authoritative filter state for the next
// render. The bar keeps the map as an opaque snapshot; a structurally equal
// map leaves the render cache intact.
func (b *FilterBar) SetValues(values filter.Values) {
	b.values = values
}

// Values returns the bar's current snapshot of the externally owned state.
func (b *FilterBar) Values() filter.Values {
	return b.values
}

// Focused reports whether any dropdown is currently open.
func (b *FilterBar) Focused() bool {
	for _, f := range b.fields {
		if b.state[f.Key].Open {
			return true
		}
	}
	return false
}

// HandleKey processes a key event for the bar. It returns true when the
// event was consumed. Selection and clear propagate through the reducer and,
// when the result differs from the current state, through OnChange.
func (b *FilterBar) HandleKey(msg tea.KeyMsg) bool {
	// An open dropdown captures all input.
	for _, f := range b.fields {
		st := b.state[f.Key]
		if !st.Open {
			continue
		}
		b.invalidate()
		chosen, value := f.HandleKey(st, msg)
		if chosen {
			b.propose(f.Key, value)
		}
		return true
	}

	switch msg.String() {
	case "left", "shift+tab":
		if b.focus > 0 {
			b.focus--
			b.invalidate()
		}
		return true

	case "right", "tab":
		if b.focus < len(b.fields)-1 {
			b.focus++
			b.invalidate()
		}
		return true

	case "enter", " ":
		f := b.fields[b.focus]
		f.Open(b.state[f.Key], b.values)
		b.invalidate()
		return true

	case "backspace", "x":
		// Clear the focused field: the removal sentinel drops the key
		// from the map entirely.
		b.propose(b.fields[b.focus].Key, nil)
		return true
	}

	return false
}

// propose runs a change through the reducer and elides the OnChange call
// when the result is structurally equal to the current state, so re-selecting
// the already-selected value never triggers a no-op update upstream.
func (b *FilterBar) propose(key filter.Key, value *int) {
	next := filter.Merge(b.values, key, value)
	if filter.Equal(next, b.values) {
		return
	}
	if b.OnChange != nil {
		b.OnChange(next)
	}
}

// invalidate marks the cached frame stale after widget-local state changed.
func (b *FilterBar) invalidate() {
	b.cacheValid = false
}

// RenderCount returns how many frames have actually been composed, as
// opposed to served from the cache.
func (b *FilterBar) RenderCount() int {
	return b.renderCount
}

// View renders the bar. The render gate returns the cached frame unless the
// values snapshot differs structurally from the one the frame was rendered
// with, or a key event invalidated the cache. A values change is never
// masked: the gate compares against exactly the state it last drew.
func (b *FilterBar) View() string {
	if b.cacheValid && filter.Equal(b.values, b.cachedValues) {
		return b.cachedFrame
	}

	frame := b.render()

	b.cachedFrame = frame
	b.cachedValues = b.values
	b.cacheValid = true
	b.renderCount++
	return frame
}

func (b *FilterBar) render() string {
	parts := make([]string, 0, len(b.fields)+1)
	parts = append(parts, styles.FilterIcon.Render("⧩ "+b.icon))

	for i, f := range b.fields {
		st := b.state[f.Key]
		if st.Open {
			parts = append(parts, f.RenderDropdown(st))
		} else {
			parts = append(parts, f.RenderField(st, b.values, i == b.focus))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(parts, "  ")...)
}

// interleave joins parts with sep as separate render segments so lipgloss
// alignment treats the gaps as content.
func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
