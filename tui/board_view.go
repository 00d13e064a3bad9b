package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trellis-crm/trellis/models"
)

func (m Model) renderBoardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PIPELINE BOARD"))
	s.WriteString("\n\n")

	switch {
	case m.loading:
		s.WriteString("Loading records...")
	case m.err != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("Load failed: %v", m.err)))
	case len(m.deals) == 0:
		s.WriteString(emptyStyle.Render("No deals in the pipeline"))
	default:
		s.WriteString(m.renderBoardColumns())
	}
	s.WriteString("\n\n")

	s.WriteString(helpStyle.Render("b: Back to lists • r: Refresh • q: Quit"))

	return s.String()
}

func (m Model) renderBoardColumns() string {
	byStage := make(map[string][]models.Deal)
	for _, deal := range m.deals {
		byStage[deal.Stage] = append(byStage[deal.Stage], deal)
	}

	colWidth := m.width/len(models.Stages) - 4
	if colWidth < 14 {
		colWidth = 14
	}

	var columns []string
	for _, stage := range models.Stages {
		deals := byStage[stage]

		var col strings.Builder
		total := 0.0
		for _, deal := range deals {
			total += deal.Value
		}
		col.WriteString(lipgloss.NewStyle().Bold(true).Render(
			fmt.Sprintf("%s (%d)", stage, len(deals))))
		col.WriteString("\n")
		col.WriteString(fmt.Sprintf("$%.0fK", total/1000))
		col.WriteString("\n\n")

		if len(deals) == 0 {
			col.WriteString(emptyStyle.Render("—"))
		}
		for _, deal := range deals {
			col.WriteString(truncate(deal.Title, colWidth))
			col.WriteString("\n")
			col.WriteString(emptyStyle.Render(fmt.Sprintf("$%.0f · %d%%", deal.Value, deal.Probability)))
			col.WriteString("\n")
		}

		columns = append(columns, columnStyle.Width(colWidth).Render(col.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
	}
	return m, nil
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
