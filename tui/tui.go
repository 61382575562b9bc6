// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides interactive full-screen dashboard, calendar, company, and method views
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sankar2i/calendar/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewLog
	ViewConfirmDelete
)

// Tab is one of the top-level list screens
type Tab int

const (
	TabDashboard Tab = iota
	TabCalendar
	TabCompanies
	TabMethods
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabCalendar:
		return "Calendar"
	case TabCompanies:
		return "Companies"
	case TabMethods:
		return "Methods"
	}
	return ""
}

// Model is the main bubbletea model
type Model struct {
	store    *store.Store
	ctx      context.Context
	viewMode ViewMode
	tab      Tab

	// List view state
	selectedRow int

	// Log form state
	formInputs []textinput.Model
	focusIndex int
	formTarget string // company ID

	// Warning banner; dismissed until the warning text changes
	dismissedWarning string

	// Status line after an action
	message string

	width  int
	height int
	err    error
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, s *store.Store) Model {
	return Model{
		store:    s,
		ctx:      ctx,
		viewMode: ViewList,
		tab:      TabDashboard,
		width:    100,
		height:   30,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewLog:
		return m.renderLogView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewList:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m.handleListKeys(msg)
	case ViewLog:
		return m.handleLogKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// Run starts the full-screen TUI
func Run(ctx context.Context, s *store.Store) error {
	p := tea.NewProgram(NewModel(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
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

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("#D97706")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)
