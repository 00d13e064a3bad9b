package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trellis-crm/trellis/dateutil"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TRELLIS CRM"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch {
	case m.loading:
		s.WriteString("Loading records...")
	case m.err != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("Load failed: %v", m.err)))
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("r: Retry"))
	default:
		s.WriteString(m.renderTable())
	}
	s.WriteString("\n\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Contacts", "Companies", "Deals", "Quotes"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityContacts:
		return m.renderContactsTable()
	case EntityCompanies:
		return m.renderCompaniesTable()
	case EntityDeals:
		return m.renderDealsTable()
	case EntityQuotes:
		return m.renderQuotesTable()
	}
	return ""
}

func (m Model) renderContactsTable() string {
	if len(m.contacts) == 0 {
		return emptyStyle.Render("No contacts yet")
	}

	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Email", Width: 28},
		{Title: "Company", Width: 20},
		{Title: "Status", Width: 10},
	}

	var rows []table.Row
	for _, contact := range m.contacts {
		rows = append(rows, table.Row{
			contact.FullName(),
			contact.Email,
			contact.Company,
			contact.Status,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderCompaniesTable() string {
	if len(m.companies) == 0 {
		return emptyStyle.Render("No companies yet")
	}

	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "City", Width: 18},
		{Title: "State", Width: 8},
		{Title: "Website", Width: 28},
	}

	var rows []table.Row
	for _, company := range m.companies {
		rows = append(rows, table.Row{
			company.Name,
			company.City,
			company.State,
			company.Website,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderDealsTable() string {
	if len(m.deals) == 0 {
		return emptyStyle.Render("No deals yet")
	}

	columns := []table.Column{
		{Title: "Title", Width: 28},
		{Title: "Stage", Width: 14},
		{Title: "Value", Width: 12},
		{Title: "Prob", Width: 6},
		{Title: "Close", Width: 14},
	}

	var rows []table.Row
	for _, deal := range m.deals {
		rows = append(rows, table.Row{
			deal.Title,
			deal.Stage,
			fmt.Sprintf("$%.0f", deal.Value),
			fmt.Sprintf("%d%%", deal.Probability),
			dateutil.FormatSafely(deal.ExpectedCloseDate, "Jan 2, 2006", "-"),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderQuotesTable() string {
	if len(m.quotes) == 0 {
		return emptyStyle.Render("No quotes yet")
	}

	columns := []table.Column{
		{Title: "Quote", Width: 24},
		{Title: "Company", Width: 22},
		{Title: "Status", Width: 10},
		{Title: "Expires", Width: 14},
	}

	var rows []table.Row
	for _, quote := range m.quotes {
		rows = append(rows, table.Row{
			quote.Name,
			quote.Company,
			quote.Status,
			dateutil.FormatSafely(quote.ExpiresOn, "Jan 2, 2006", "-"),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, m.height-10)),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"b: Pipeline board",
		"r: Refresh",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.entityType = (m.entityType + 1) % tabCount
		m.selectedRow = 0
	case "shift+tab":
		m.entityType = (m.entityType + tabCount - 1) % tabCount
		m.selectedRow = 0
	}

	return m, nil
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityContacts:
		return len(m.contacts)
	case EntityCompanies:
		return len(m.companies)
	case EntityDeals:
		return len(m.deals)
	case EntityQuotes:
		return len(m.quotes)
	}
	return 0
}
