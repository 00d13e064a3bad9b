// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides interactive full-screen browsing of CRM records
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/trellis-crm/trellis/models"
	"github.com/trellis-crm/trellis/services"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewBoard
)

// EntityType represents the tab being viewed
type EntityType int

const (
	EntityContacts EntityType = iota
	EntityCompanies
	EntityDeals
	EntityQuotes
)

const tabCount = 4

// Services is the slice of the service layer the TUI reads from.
type Services struct {
	Companies *services.CompanyService
	Contacts  *services.ContactService
	Deals     *services.DealService
	Quotes    *services.QuoteService
}

// dataLoadedMsg delivers a full refresh; all four loads are joined
// before the view re-renders so tabs never show a mixed snapshot.
type dataLoadedMsg struct {
	contacts  []models.Contact
	companies []models.Company
	deals     []models.Deal
	quotes    []models.Quote
}

type loadFailedMsg struct {
	err error
}

// Model is the main bubbletea model
type Model struct {
	svc        Services
	viewMode   ViewMode
	entityType EntityType

	loading bool
	err     error

	contacts  []models.Contact
	companies []models.Company
	deals     []models.Deal
	quotes    []models.Quote

	selectedRow int

	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(svc Services) Model {
	return Model{
		svc:        svc,
		viewMode:   ViewList,
		entityType: EntityContacts,
		loading:    true,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd fetches all four entity lists in parallel. The services
// degrade store failures to empty lists, so the only load error is a
// timeout on the batch as a whole.
func (m Model) loadCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var msg dataLoadedMsg
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			msg.contacts = svc.Contacts.List(ctx)
			return ctx.Err()
		})
		g.Go(func() error {
			msg.companies = svc.Companies.List(ctx)
			return ctx.Err()
		})
		g.Go(func() error {
			msg.deals = svc.Deals.List(ctx)
			return ctx.Err()
		})
		g.Go(func() error {
			msg.quotes = svc.Quotes.List(ctx)
			return ctx.Err()
		})
		if err := g.Wait(); err != nil {
			return loadFailedMsg{err: err}
		}
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case dataLoadedMsg:
		m.loading = false
		m.err = nil
		m.contacts = msg.contacts
		m.companies = msg.companies
		m.deals = msg.deals
		m.quotes = msg.quotes
		return m, nil
	case loadFailedMsg:
		m.loading = false
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewBoard:
		return m.renderBoardView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.loading = true
		return m, m.loadCmd()
	case "b":
		if m.viewMode == ViewBoard {
			m.viewMode = ViewList
		} else {
			m.viewMode = ViewBoard
		}
		return m, nil
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewBoard:
		return m.handleBoardKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
