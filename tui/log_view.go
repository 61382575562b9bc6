// ABOUTME: Communication logging form for the TUI
// ABOUTME: Collects type, date, and notes and dispatches a log command
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/models"
)

const (
	fieldType = iota
	fieldDate
	fieldNotes
)

func (m *Model) initLogForm(c models.Company, today string) {
	inputs := make([]textinput.Model, 3)

	inputs[fieldType] = textinput.New()
	inputs[fieldType].Placeholder = "Type (e.g. Email)"
	inputs[fieldType].CharLimit = 50
	inputs[fieldType].SetValue(c.NextCommunicationType)

	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = "Date (YYYY-MM-DD)"
	inputs[fieldDate].CharLimit = 10
	inputs[fieldDate].SetValue(today)

	inputs[fieldNotes] = textinput.New()
	inputs[fieldNotes].Placeholder = "Notes"
	inputs[fieldNotes].CharLimit = 500

	m.formInputs = inputs
	m.formTarget = c.ID.String()
	m.focusIndex = 0
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m Model) renderLogView() string {
	var s strings.Builder

	name := m.formTarget
	if id, err := uuid.Parse(m.formTarget); err == nil {
		if c, ok := m.store.Company(id); ok {
			name = c.Name
		}
	}

	s.WriteString(titleStyle.Render("LOG COMMUNICATION: " + name))
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	var methods []string
	for _, method := range m.store.Methods() {
		methods = append(methods, method.Name)
	}
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Methods: " + strings.Join(methods, ", ")))
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		s.WriteString("\n")
	}

	help := []string{"Tab: Next field", "Enter: Save", "Esc: Cancel"}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return s.String()
}

func (m Model) handleLogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.err = nil
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		if err := m.saveLog(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.viewMode = ViewList
		m.clampRow()
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) saveLog() error {
	id, err := uuid.Parse(m.formTarget)
	if err != nil {
		return fmt.Errorf("invalid company ID: %w", err)
	}

	updated, err := m.store.LogCommunication(m.ctx, id, models.Communication{
		Type:  m.formInputs[fieldType].Value(),
		Date:  m.formInputs[fieldDate].Value(),
		Notes: m.formInputs[fieldNotes].Value(),
	})
	if err != nil {
		return err
	}

	m.message = fmt.Sprintf("Logged communication with %s", updated.Name)
	return nil
}
