package tui

import (
	"github.com/tarrant/projscope/internal/inventory"
	"github.com/tarrant/projscope/internal/tui/filter"
)

// optionsLoadedMsg carries the fetched option lists for both filter fields.
type optionsLoadedMsg struct {
	namespaces   filter.Options
	projectTypes filter.Options
}

// projectsLoadedMsg carries the result of a filtered inventory query.
type projectsLoadedMsg struct {
	projects []inventory.Project
}

// filterChangedMsg carries the replacement filter map proposed by the
// filter bar's OnChange callback.
type filterChangedMsg struct {
	values filter.Values
}

// inventoryErrMsg reports a failed inventory request.
type inventoryErrMsg struct {
	err error
}
