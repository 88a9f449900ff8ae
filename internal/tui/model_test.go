package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarrant/projscope/internal/i18n"
	"github.com/tarrant/projscope/internal/inventory"
	"github.com/tarrant/projscope/internal/logging"
	"github.com/tarrant/projscope/internal/tui/filter"
)

// fakeInventory is an in-memory Inventory that records the queries it sees.
type fakeInventory struct {
	mu          sync.Mutex
	namespaces  []inventory.Namespace
	types       []inventory.ProjectType
	projects    []inventory.Project
	queries     []inventory.Query
	projectsErr error
}

func (f *fakeInventory) Namespaces(context.Context) ([]inventory.Namespace, error) {
	return f.namespaces, nil
}

func (f *fakeInventory) ProjectTypes(context.Context) ([]inventory.ProjectType, error) {
	return f.types, nil
}

func (f *fakeInventory) Projects(_ context.Context, q inventory.Query) ([]inventory.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	return f.projects, nil
}

func newTestModel(t *testing.T, inv *fakeInventory) Model {
	t.Helper()
	catalog, err := i18n.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return NewModel(inv, catalog, logging.NopLogger(), 50)
}

func defaultInventory() *fakeInventory {
	return &fakeInventory{
		namespaces: []inventory.Namespace{{ID: 1, Name: "prod"}, {ID: 2, Name: "staging"}},
		types:      []inventory.ProjectType{{ID: 10, Name: "HTTP API"}},
		projects:   []inventory.Project{{ID: 4, Name: "billing-api", Namespace: "prod", ProjectType: "HTTP API"}},
	}
}

// drain runs a command and returns the message it produces.
func drain(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestInitLoadsOptionsAndProjects(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)

	batch := m.Init()
	if batch == nil {
		t.Fatal("Init returned no command")
	}

	msg := drain(t, m.loadOptionsCmd())
	loaded, ok := msg.(optionsLoadedMsg)
	if !ok {
		t.Fatalf("loadOptionsCmd produced %T", msg)
	}
	if len(loaded.namespaces) != 2 || loaded.namespaces[1].Label != "staging" {
		t.Errorf("namespaces = %v", loaded.namespaces)
	}
	if len(loaded.projectTypes) != 1 || loaded.projectTypes[0].Value != 10 {
		t.Errorf("projectTypes = %v", loaded.projectTypes)
	}
}

func TestFilterChangedTriggersQueryWithEncodedValues(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)

	next, cmd := m.Update(filterChangedMsg{values: filter.Values{filter.KeyNamespace: 2}})
	m = next.(Model)

	if !filter.Equal(m.values, filter.Values{filter.KeyNamespace: 2}) {
		t.Errorf("model values = %v", m.values)
	}
	if !m.loading {
		t.Error("model not loading after filter change")
	}

	msg := drain(t, cmd)
	if _, ok := msg.(projectsLoadedMsg); !ok {
		t.Fatalf("query produced %T: %v", msg, msg)
	}

	if len(inv.queries) != 1 {
		t.Fatalf("%d queries issued, want 1", len(inv.queries))
	}
	q := inv.queries[0]
	if q.NamespaceID == nil || *q.NamespaceID != 2 {
		t.Errorf("NamespaceID = %v, want 2", q.NamespaceID)
	}
	if q.ProjectTypeID != nil {
		t.Errorf("ProjectTypeID = %v, want nil (filter inactive)", q.ProjectTypeID)
	}
}

func TestQueryFromValues(t *testing.T) {
	cases := []struct {
		name   string
		values filter.Values
		wantNS *int
		wantPT *int
	}{
		{"empty", filter.Values{}, nil, nil},
		{"namespace", filter.Values{filter.KeyNamespace: 3}, intp(3), nil},
		{"both", filter.Values{filter.KeyNamespace: 3, filter.KeyProjectType: 9}, intp(3), intp(9)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := queryFromValues(tc.values)
			if !intpEqual(q.NamespaceID, tc.wantNS) {
				t.Errorf("NamespaceID = %v, want %v", q.NamespaceID, tc.wantNS)
			}
			if !intpEqual(q.ProjectTypeID, tc.wantPT) {
				t.Errorf("ProjectTypeID = %v, want %v", q.ProjectTypeID, tc.wantPT)
			}
		})
	}
}

func TestOptionsLoadedRebuildsBarKeepingValues(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)

	next, _ := m.Update(filterChangedMsg{values: filter.Values{filter.KeyNamespace: 1}})
	m = next.(Model)

	next, _ = m.Update(optionsLoadedMsg{
		namespaces:   filter.Options{{Label: "prod", Value: 1}},
		projectTypes: filter.Options{{Label: "HTTP API", Value: 10}},
	})
	m = next.(Model)

	if !filter.Equal(m.bar.Values(), filter.Values{filter.KeyNamespace: 1}) {
		t.Errorf("bar values after rebuild = %v", m.bar.Values())
	}
}

func TestBarProposalsFlowThroughEmitter(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)

	var sent []tea.Msg
	m.emitter.send = func(msg tea.Msg) { sent = append(sent, msg) }

	next, _ := m.Update(optionsLoadedMsg{
		namespaces:   filter.Options{{Label: "prod", Value: 1}, {Label: "staging", Value: 2}},
		projectTypes: filter.Options{{Label: "HTTP API", Value: 10}},
	})
	m = next.(Model)

	// Open the namespace dropdown, move to staging, commit.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if len(sent) != 1 {
		t.Fatalf("%d messages emitted, want 1", len(sent))
	}
	changed, ok := sent[0].(filterChangedMsg)
	if !ok {
		t.Fatalf("emitted %T", sent[0])
	}
	if !filter.Equal(changed.values, filter.Values{filter.KeyNamespace: 2}) {
		t.Errorf("proposed values = %v, want {namespace: 2}", changed.values)
	}
}

func TestInventoryErrorSurfacesInStatus(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)
	m.ready = true
	m.height = 30

	next, _ := m.Update(inventoryErrMsg{err: errors.New("connection refused")})
	m = next.(Model)

	if m.loading {
		t.Error("still loading after error")
	}
	out := m.View()
	if !strings.Contains(out, "connection refused") {
		t.Errorf("error not rendered:\n%s", out)
	}
}

func TestQuitKeys(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if msg := cmd(); msg == nil {
		t.Error("quit command produced no message")
	}
}

func TestQDoesNotQuitWhileDropdownOpen(t *testing.T) {
	inv := defaultInventory()
	m := newTestModel(t, inv)

	next, _ := m.Update(optionsLoadedMsg{
		namespaces: filter.Options{{Label: "prod", Value: 1}},
	})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // open dropdown
	m = next.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("q quit the app while a dropdown had focus")
	}
}

func intp(v int) *int { return &v }

func intpEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
