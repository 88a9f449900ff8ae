package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tarrant/projscope/internal/tui/styles"
	"github.com/tarrant/projscope/internal/util"
)

// View renders the full frame: header, filter bar, project summary, footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.catalog.Lookup("loading")
	}

	var b strings.Builder

	b.WriteString(styles.Header.Render(m.catalog.Lookup("projects")))
	b.WriteString("\n")

	b.WriteString(m.bar.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderResults())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderResults shows a plain name-per-line summary of the matching
// projects, truncated to the available height. Anything fancier (columns,
// pagination, selection) is deliberately not this screen's business.
func (m Model) renderResults() string {
	if m.loading {
		return styles.Muted.Render(m.catalog.Lookup("loading"))
	}
	if m.errMsg != "" {
		return styles.Error.Render(m.catalog.Lookup("error_prefix") + ": " + m.errMsg)
	}
	if len(m.projects) == 0 {
		return styles.Muted.Render(m.catalog.Lookup("no_projects"))
	}

	limit := resultsHeight(m.height)
	if m.maxResults > 0 && limit > m.maxResults {
		limit = m.maxResults
	}

	rowWidth := m.width - ContentWidthPadding
	if rowWidth < MinRowWidth {
		rowWidth = MinRowWidth
	}
	lines := make([]string, 0, limit+1)
	for i, p := range m.projects {
		if i >= limit {
			lines = append(lines, styles.Muted.Render(fmt.Sprintf("…and %d more", len(m.projects)-limit)))
			break
		}
		row := styles.Text.Render(p.Name) +
			styles.Muted.Render("  "+p.Namespace+" · "+p.ProjectType)
		lines = append(lines, util.Truncate(row, rowWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	count := fmt.Sprintf("%d %s", len(m.projects), strings.ToLower(m.catalog.Lookup("projects")))
	status := styles.StatusBar.Render(count)

	help := strings.Join([]string{
		styles.HelpKey.Render("←/→") + " " + m.catalog.Lookup("help_move"),
		styles.HelpKey.Render("enter") + " " + m.catalog.Lookup("help_open"),
		styles.HelpKey.Render("x") + " " + m.catalog.Lookup("help_clear"),
		styles.HelpKey.Render("q") + " " + m.catalog.Lookup("help_quit"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left, status, styles.HelpBar.Render(help))
}
