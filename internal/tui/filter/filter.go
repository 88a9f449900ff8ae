package filter

import (
	"github.com/charmbracelet/lipgloss"
)

// Key identifies one filterable field. The set of keys is closed: the
// inventory API only understands the fields declared below.
type Key string

const (
	// KeyNamespace filters projects by owning namespace.
	KeyNamespace Key = "namespace"

	// KeyProjectType filters projects by project type.
	KeyProjectType Key = "project_type"
)

// Keys is the standard set of filter keys in display order.
var Keys = []Key{KeyNamespace, KeyProjectType}

// Option is one selectable entry for a filter field. Options are supplied
// by the inventory service and are immutable once fetched; their order is
// display order.
type Option struct {
	Label string // Display label (e.g., "Data Platform")
	Value int    // Stable identifier sent back in queries
}

// Options is an ordered list of selectable entries for one field.
type Options []Option

// Values is the sparse active-filter map. A key that is present maps to the
// Value of a selected Option; a key that is absent means no filter is applied
// for that field. Values is treated as an immutable snapshot: it is replaced
// wholesale on every change, never mutated in place.
type Values map[Key]int

// Merge returns a new Values with the given key set to value, or with the
// key removed when value is nil. The input is never mutated; the result is
// always a freshly allocated map, even when its content matches the input.
// Callers that want to skip redundant updates should compare the result
// against the input with Equal before propagating it.
func Merge(current Values, key Key, value *int) Values {
	next := make(Values, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	if value == nil {
		delete(next, key)
	} else {
		next[key] = *value
	}
	return next
}

// Equal reports whether a and b hold the same active filters: the same key
// set with the same value per key. This is structural equality, not identity;
// Merge always allocates, so an identity comparison against its result could
// never succeed.
func Equal(a, b Values) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || w != v {
			return false
		}
	}
	return true
}

// Selected returns the Option from opts whose Value matches the current
// selection for key, if any. A value present in values but absent from opts
// (the option list was refreshed underneath the selection) reports false:
// the field renders as unselected and the stale entry stays in values until
// the user changes or clears it.
func Selected(values Values, key Key, opts Options) (Option, bool) {
	v, ok := values[key]
	if !ok {
		return Option{}, false
	}
	for _, opt := range opts {
		if opt.Value == v {
			return opt, true
		}
	}
	return Option{}, false
}

// MinFieldWidth is the narrowest a filter field renders. It is also the
// defined fallback for an empty option list, where "width of the longest
// label" has no meaning.
const MinFieldWidth = 12

// fieldChromeWidth accounts for the selection marker, border, and padding
// that surround a field's label text.
const fieldChromeWidth = 6

// WidthHint derives a display width in terminal cells for a field from its
// option list: the widest label (measured in cells, so wide runes count
// properly), divided by scale, plus room for the field chrome. The scale is
// an empirically tuned per-field constant, not something derived. The result
// never drops below MinFieldWidth, and an empty list yields exactly
// MinFieldWidth rather than a max over nothing.
func WidthHint(opts Options, scale int) int {
	if scale < 1 {
		scale = 1
	}
	maxLabel := 0
	for _, opt := range opts {
		if w := lipgloss.Width(opt.Label); w > maxLabel {
			maxLabel = w
		}
	}
	width := maxLabel/scale + fieldChromeWidth
	if width < MinFieldWidth {
		width = MinFieldWidth
	}
	return width
}
