package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarrant/projscope/internal/i18n"
	"github.com/tarrant/projscope/internal/inventory"
	"github.com/tarrant/projscope/internal/logging"
	"github.com/tarrant/projscope/internal/tui/filter"
	"github.com/tarrant/projscope/internal/tui/view"
)

// Inventory is the slice of the inventory client the TUI consumes.
type Inventory interface {
	Namespaces(ctx context.Context) ([]inventory.Namespace, error)
	ProjectTypes(ctx context.Context) ([]inventory.ProjectType, error)
	Projects(ctx context.Context, q inventory.Query) ([]inventory.Project, error)
}

// emitter routes messages back into the running program. The send function
// is wired by App once the Bubble Tea program exists; the filter bar's
// OnChange closure captures the emitter so the wiring can happen later.
type emitter struct {
	send func(tea.Msg)
}

func (e *emitter) emit(msg tea.Msg) {
	if e.send != nil {
		e.send(msg)
	}
}

// Model holds the TUI application state. It owns the authoritative filter
// map: the filter bar receives it before every render and proposes
// replacements through its OnChange callback, which arrive back here as
// filterChangedMsg.
type Model struct {
	client  Inventory
	catalog *i18n.Catalog
	logger  *logging.Logger
	emitter *emitter

	bar    *view.FilterBar
	values filter.Values

	projects []inventory.Project
	loading  bool
	errMsg   string

	maxResults int
	width      int
	height     int
	ready      bool
	quitting   bool
}

// NewModel creates the TUI model. The filter bar starts with empty option
// lists (rendering at its minimum width) and is rebuilt once the real lists
// arrive from the inventory service.
func NewModel(client Inventory, catalog *i18n.Catalog, logger *logging.Logger, maxResults int) Model {
	em := &emitter{}
	m := Model{
		client:     client,
		catalog:    catalog,
		logger:     logger,
		emitter:    em,
		values:     filter.Values{},
		loading:    true,
		maxResults: maxResults,
	}
	m.bar = m.newBar(nil, nil)
	return m
}

// newBar constructs a filter bar wired to propose changes back through the
// emitter.
func (m Model) newBar(namespaces, projectTypes filter.Options) *view.FilterBar {
	em := m.emitter
	bar := view.NewFilterBar(m.catalog.Lookup, namespaces, projectTypes, func(v filter.Values) {
		em.emit(filterChangedMsg{values: v})
	})
	bar.SetValues(m.values)
	return bar
}

// Init kicks off the initial loads: the option lists and an unfiltered
// project listing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadOptionsCmd(), m.queryCmd(m.values))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case optionsLoadedMsg:
		// Rebuild the bar around the real option lists; the authoritative
		// values survive untouched (a stale selection renders unselected).
		m.bar = m.newBar(msg.namespaces, msg.projectTypes)
		m.logger.Debug("filter options loaded",
			"namespaces", len(msg.namespaces),
			"project_types", len(msg.projectTypes))
		return m, nil

	case filterChangedMsg:
		m.values = msg.values
		m.bar.SetValues(m.values)
		m.loading = true
		m.errMsg = ""
		m.logger.Info("filters changed", "active", len(m.values))
		return m, m.queryCmd(m.values)

	case projectsLoadedMsg:
		m.projects = msg.projects
		m.loading = false
		return m, nil

	case inventoryErrMsg:
		m.loading = false
		m.errMsg = msg.err.Error()
		m.logger.Error("inventory request failed", "error", msg.err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open dropdown owns the keyboard, including "q".
	if m.bar.Focused() {
		m.bar.HandleKey(msg)
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	m.bar.HandleKey(msg)
	return m, nil
}

// loadOptionsCmd fetches both option lists for the filter fields.
func (m Model) loadOptionsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()

		namespaces, err := client.Namespaces(ctx)
		if err != nil {
			return inventoryErrMsg{err: err}
		}
		types, err := client.ProjectTypes(ctx)
		if err != nil {
			return inventoryErrMsg{err: err}
		}

		nsOpts := make(filter.Options, len(namespaces))
		for i, ns := range namespaces {
			nsOpts[i] = filter.Option{Label: ns.Name, Value: ns.ID}
		}
		ptOpts := make(filter.Options, len(types))
		for i, pt := range types {
			ptOpts[i] = filter.Option{Label: pt.Name, Value: pt.ID}
		}

		return optionsLoadedMsg{namespaces: nsOpts, projectTypes: ptOpts}
	}
}

// queryCmd fetches the project listing for the given filter snapshot.
func (m Model) queryCmd(values filter.Values) tea.Cmd {
	client := m.client
	query := queryFromValues(values)
	return func() tea.Msg {
		projects, err := client.Projects(context.Background(), query)
		if err != nil {
			return inventoryErrMsg{err: err}
		}
		return projectsLoadedMsg{projects: projects}
	}
}

// queryFromValues routes the sparse filter map into an inventory query:
// a present key becomes a typed parameter, an absent key stays omitted.
func queryFromValues(values filter.Values) inventory.Query {
	var q inventory.Query
	if v, ok := values[filter.KeyNamespace]; ok {
		id := v
		q.NamespaceID = &id
	}
	if v, ok := values[filter.KeyProjectType]; ok {
		id := v
		q.ProjectTypeID = &id
	}
	return q
}
