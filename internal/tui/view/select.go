package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarrant/projscope/internal/tui/filter"
	"github.com/tarrant/projscope/internal/tui/styles"
)

// maxDropdownItems caps how many options a dropdown shows at once.
const maxDropdownItems = 8

// SelectState holds the widget-local UI state for one filter field's
// dropdown: whether it is open, where the cursor sits, and the type-to-filter
// input. The selection itself is never stored here; it is derived on every
// render from the externally owned filter values.
type SelectState struct {
	// Open indicates whether the dropdown is currently expanded.
	Open bool

	// Cursor is the highlighted index within the currently visible options.
	Cursor int

	// Input is the type-to-filter text input shown while the dropdown is open.
	Input textinput.Model
}

// NewSelectState creates dropdown state with a configured filter input.
func NewSelectState() *SelectState {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 50
	ti.Prompt = ""
	return &SelectState{Input: ti}
}

// Select is the controlled dropdown for a single filter field. It binds to
// exactly one filter key and holds no selection of its own: displayed state
// is a pure function of (Options, Values) each render.
type Select struct {
	// Key is the filter key this field binds to.
	Key filter.Key

	// Label is the resolved display label for the field.
	Label string

	// Options is the externally supplied option list for the field.
	Options filter.Options

	// Width is the field's display width hint in cells.
	Width int
}

// Visible returns the options currently shown in the dropdown, narrowed by
// the type-to-filter input. An empty input shows everything.
func (s *Select) Visible(state *SelectState) filter.Options {
	pattern := strings.ToLower(strings.TrimSpace(state.Input.Value()))
	if pattern == "" {
		return s.Options
	}
	matched := make(filter.Options, 0, len(s.Options))
	for _, opt := range s.Options {
		if strings.Contains(strings.ToLower(opt.Label), pattern) {
			matched = append(matched, opt)
		}
	}
	return matched
}

// Open expands the dropdown, positioning the cursor on the current
// selection when one exists.
func (s *Select) Open(state *SelectState, values filter.Values) {
	state.Open = true
	state.Cursor = 0
	state.Input.SetValue("")
	state.Input.Focus()

	if current, ok := filter.Selected(values, s.Key, s.Options); ok {
		for i, opt := range s.Options {
			if opt.Value == current.Value {
				state.Cursor = i
				break
			}
		}
	}
}

// Close collapses the dropdown and resets its transient state.
func (s *Select) Close(state *SelectState) {
	state.Open = false
	state.Cursor = 0
	state.Input.SetValue("")
	state.Input.Blur()
}

// HandleKey processes a key press while the dropdown is open. When the user
// commits a choice it returns chosen=true and the selected option's value;
// the caller routes that value through the filter reducer. Navigation and
// typing return chosen=false.
func (s *Select) HandleKey(state *SelectState, msg tea.KeyMsg) (chosen bool, value *int) {
	visible := s.Visible(state)

	switch msg.Type {
	case tea.KeyEsc:
		s.Close(state)
		return false, nil

	case tea.KeyEnter, tea.KeyTab:
		if len(visible) > 0 && state.Cursor < len(visible) {
			v := visible[state.Cursor].Value
			s.Close(state)
			return true, &v
		}
		s.Close(state)
		return false, nil

	case tea.KeyUp:
		if state.Cursor > 0 {
			state.Cursor--
		}
		return false, nil

	case tea.KeyDown:
		if state.Cursor < len(visible)-1 {
			state.Cursor++
		}
		return false, nil
	}

	// Everything else feeds the type-to-filter input; a narrowed list can
	// leave the cursor out of range, so clamp it back in.
	state.Input, _ = state.Input.Update(msg)
	if n := len(s.Visible(state)); state.Cursor >= n {
		state.Cursor = 0
	}
	return false, nil
}

// RenderField renders the collapsed field: its label and either the current
// selection or an explicit unselected placeholder. A stale value (absent
// from Options) renders as unselected rather than failing.
func (s *Select) RenderField(state *SelectState, values filter.Values, focused bool) string {
	var body string
	if opt, ok := filter.Selected(values, s.Key, s.Options); ok {
		body = styles.FieldSelected.Render(opt.Label)
	} else {
		body = styles.FieldUnselected.Render("any")
	}

	box := styles.FieldBlurred
	if focused {
		box = styles.FieldFocused
	}

	label := styles.FieldLabel.Render(s.Label)
	return label + "\n" + box.Width(s.Width).Render(body)
}

// RenderDropdown renders the expanded option list with the filter input and
// cursor highlight.
func (s *Select) RenderDropdown(state *SelectState) string {
	var b strings.Builder

	b.WriteString(styles.FieldLabel.Render(s.Label))
	b.WriteString(" ")
	b.WriteString(state.Input.View())
	b.WriteString("\n")

	visible := s.Visible(state)
	if len(visible) == 0 {
		b.WriteString(styles.Muted.Render("(no matches)"))
	}

	shown := len(visible)
	if shown > maxDropdownItems {
		shown = maxDropdownItems
	}

	// Keep the cursor inside the shown window.
	start := 0
	if state.Cursor >= shown {
		start = state.Cursor - shown + 1
	}

	for i := start; i < start+shown && i < len(visible); i++ {
		opt := visible[i]
		if i == state.Cursor {
			b.WriteString(styles.DropdownCursor.Render("> " + opt.Label))
		} else {
			b.WriteString(styles.DropdownItem.Render("  " + opt.Label))
		}
		if i < start+shown-1 {
			b.WriteString("\n")
		}
	}

	if remaining := len(visible) - start - shown; remaining > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("  …and more"))
	}

	return styles.DropdownBox.Width(s.Width).Render(b.String())
}
