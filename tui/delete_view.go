// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms deletion of a company together with its history
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	id, err := uuid.Parse(m.formTarget)
	if err != nil {
		return fmt.Sprintf("Error: invalid ID: %v", err)
	}
	c, ok := m.store.Company(id)
	if !ok {
		return "Error: company no longer exists"
	}

	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := "Are you sure you want to delete this company?"
	entityInfo := fmt.Sprintf("\nCOMPANY: %s\n%d logged communications will be removed.\n", c.Name, len(c.History))
	warning := "\nThis action cannot be undone!"

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, confirmBoxStyle.Render(content))
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id, err := uuid.Parse(m.formTarget)
		if err == nil {
			err = m.store.DeleteCompany(m.ctx, id)
		}
		if err != nil {
			m.err = err
		} else {
			m.message = "Company deleted"
		}
		m.formTarget = ""
		m.viewMode = ViewList
		m.clampRow()
	case "n", "N", "esc":
		m.viewMode = ViewList
	}

	return m, nil
}
