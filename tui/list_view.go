// ABOUTME: List screens for the TUI: dashboard, calendar, companies, and methods tabs
// ABOUTME: Handles navigation, highlight overrides, method moves, and entry into forms
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
	"github.com/Sankar2i/calendar/viz"
)

func statusStyle(s models.Status) lipgloss.Style {
	bg, _ := s.Colors()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(models.ColorEventText)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}

func (m Model) renderListView() string {
	sched := m.store.Schedule()

	var s strings.Builder

	// Title with notification badge
	title := fmt.Sprintf("COMMUNICATION CALENDAR  %s  🔔 %d", sched.Today, sched.Counts.Total)
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n")

	if w := sched.Result.Warning; w != "" && w != m.dismissedWarning {
		s.WriteString(bannerStyle.Render("⚠ " + w + "  (x to dismiss)"))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.tab {
	case TabDashboard:
		s.WriteString(m.renderDashboard(sched))
	case TabCalendar:
		s.WriteString(viz.RenderMonth(m.calendarMonth(sched.Today), sched.Result.Events, sched.Today))
	case TabCompanies:
		s.WriteString(m.renderCompaniesTable(sched))
	case TabMethods:
		s.WriteString(m.renderMethodsTable(sched.State))
	}
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		s.WriteString("\n")
	} else if m.message != "" {
		s.WriteString(messageStyle.Render(m.message))
		s.WriteString("\n")
	}

	s.WriteString(m.renderListHelp())
	return s.String()
}

func (m Model) renderTabs() string {
	var rendered []string
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			rendered = append(rendered, tabActiveStyle.Render(t.String()))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// calendarMonth is the current month of today.
func (m Model) calendarMonth(today string) time.Time {
	t, err := cadence.ParseDate(today)
	if err != nil {
		return time.Now()
	}
	return t
}

// dashboardRows lists the highlighted events: overdue first, then due today.
func dashboardRows(sched store.Schedule) []models.CalendarEvent {
	rows := append([]models.CalendarEvent(nil), sched.Grids.Overdue...)
	return append(rows, sched.Grids.DueToday...)
}

func (m Model) renderDashboard(sched store.Schedule) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%s  %s\n\n",
		statusStyle(models.StatusOverdue).Render(fmt.Sprintf("%d overdue", sched.Counts.Overdue)),
		statusStyle(models.StatusDueToday).Render(fmt.Sprintf("%d due today", sched.Counts.DueToday)),
	))

	columns := []table.Column{
		{Title: "Status", Width: 10},
		{Title: "Company", Width: 28},
		{Title: "Due", Width: 12},
		{Title: "Type", Width: 24},
		{Title: "Last Five Communications", Width: 40},
	}

	var rows []table.Row
	for _, e := range dashboardRows(sched) {
		c, _ := sched.State.Company(e.CompanyID)
		rows = append(rows, table.Row{
			string(e.Status),
			e.Title,
			e.Date,
			e.Type,
			recentSummary(c.History),
		})
	}

	if len(rows) == 0 {
		s.WriteString("Nothing overdue or due today.\n")
		return s.String()
	}

	s.WriteString(m.newTable(columns, rows).View())
	return s.String()
}

func recentSummary(history []models.Communication) string {
	parts := make([]string, 0, len(history))
	for _, h := range history {
		parts = append(parts, fmt.Sprintf("%s %s", h.Type, h.Date[5:]))
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderCompaniesTable(sched store.Schedule) string {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Location", Width: 18},
		{Title: "Every", Width: 10},
		{Title: "Next", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Last", Width: 24},
	}

	next := make(map[uuid.UUID]models.CalendarEvent, len(sched.Result.Events))
	for _, e := range sched.Result.Events {
		next[e.CompanyID] = e
	}

	var rows []table.Row
	for _, c := range sched.State.Companies {
		e, ok := next[c.ID]
		due, status := "-", "error"
		if ok {
			due, status = e.Date, string(e.Status)
		}
		if sched.State.IsOverridden(c.ID) {
			status += " (off)"
		}
		last := "-"
		if entry, ok := c.LastCommunication(); ok {
			last = entry.Date + " " + entry.Type
		}
		rows = append(rows, table.Row{c.Name, c.Location, c.Periodicity, due, status, last})
	}

	if len(rows) == 0 {
		return "No companies yet. Add one with: calendar admin add-company\n"
	}
	return m.newTable(columns, rows).View()
}

func (m Model) renderMethodsTable(st store.State) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 20},
		{Title: "Mandatory", Width: 10},
		{Title: "Description", Width: 50},
	}

	var rows []table.Row
	for _, method := range st.Methods {
		mandatory := "no"
		if method.Mandatory {
			mandatory = "yes"
		}
		rows = append(rows, table.Row{fmt.Sprint(method.Sequence), method.Name, mandatory, method.Description})
	}

	if len(rows) == 0 {
		return "No communication methods.\n"
	}
	return m.newTable(columns, rows).View()
}

func (m Model) newTable(columns []table.Column, rows []table.Row) table.Model {
	height := m.height - 12
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}
	return t
}

func (m Model) renderListHelp() string {
	help := []string{"↑/↓: Navigate", "Tab: Switch tabs"}
	switch m.tab {
	case TabDashboard:
		help = append(help, "l: Log communication", "o: Override highlight")
	case TabCompanies:
		help = append(help, "l: Log communication", "o: Toggle highlight", "d: Delete")
	case TabMethods:
		help = append(help, "K/J: Move up/down")
	}
	help = append(help, "x: Dismiss warning", "q: Quit")
	return helpStyle.Render(strings.Join(help, " • "))
}

// rowCount is the number of selectable rows on the current tab.
func (m Model) rowCount(sched store.Schedule) int {
	switch m.tab {
	case TabDashboard:
		return len(dashboardRows(sched))
	case TabCompanies:
		return len(sched.State.Companies)
	case TabMethods:
		return len(sched.State.Methods)
	}
	return 0
}

// selectedCompany returns the company under the cursor on the dashboard or companies tab.
func (m Model) selectedCompany(sched store.Schedule) (models.Company, bool) {
	switch m.tab {
	case TabDashboard:
		rows := dashboardRows(sched)
		if m.selectedRow < len(rows) {
			return sched.State.Company(rows[m.selectedRow].CompanyID)
		}
	case TabCompanies:
		if m.selectedRow < len(sched.State.Companies) {
			return sched.State.Companies[m.selectedRow], true
		}
	}
	return models.Company{}, false
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sched := m.store.Schedule()
	m.err = nil

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount(sched)-1 {
			m.selectedRow++
		}
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		m.selectedRow = 0
		m.message = ""
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.selectedRow = 0
		m.message = ""
	case "x":
		m.dismissedWarning = sched.Result.Warning
	case "o":
		c, ok := m.selectedCompany(sched)
		if !ok {
			return m, nil
		}
		if sched.State.IsOverridden(c.ID) {
			m.err = m.store.ClearOverride(m.ctx, c.ID)
			m.message = "Highlight restored for " + c.Name
		} else {
			m.err = m.store.OverrideHighlight(m.ctx, c.ID)
			m.message = "Highlight overridden for " + c.Name
		}
		m.clampRow()
	case "l":
		if c, ok := m.selectedCompany(sched); ok {
			m.initLogForm(c, sched.Today)
			m.viewMode = ViewLog
		}
	case "d":
		if m.tab != TabCompanies {
			return m, nil
		}
		if c, ok := m.selectedCompany(sched); ok {
			m.formTarget = c.ID.String()
			m.viewMode = ViewConfirmDelete
		}
	case "K", "J":
		if m.tab != TabMethods || m.selectedRow >= len(sched.State.Methods) {
			return m, nil
		}
		method := sched.State.Methods[m.selectedRow]
		dir := store.Up
		if msg.String() == "J" {
			dir = store.Down
		}
		if m.err = m.store.MoveMethod(m.ctx, method.ID, dir); m.err == nil {
			moved, _ := m.store.Snapshot().Method(method.ID)
			m.selectedRow = moved.Sequence - 1
		}
	}

	return m, nil
}

func (m *Model) clampRow() {
	n := m.rowCount(m.store.Schedule())
	if m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}
