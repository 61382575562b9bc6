// ABOUTME: Tests for TUI tab navigation, overrides, and forms
package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

func testStore(t *testing.T, st store.State) *store.Store {
	t.Helper()
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	return store.New(st,
		store.WithClock(func() time.Time { return now }),
		store.WithLocation(time.UTC),
		store.WithAnchor(cadence.AnchorLastCommunication),
	)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func overdueCompany(t *testing.T, s *store.Store) *models.Company {
	t.Helper()
	ctx := context.Background()
	c, err := s.CreateCompany(ctx, models.Company{
		Name:                  "Acme",
		Location:              "Paris",
		Periodicity:           "1 day",
		NextCommunicationType: "Email",
	})
	require.NoError(t, err)
	_, err = s.LogCommunication(ctx, c.ID, models.Communication{Type: "Email", Date: "2024-03-01"})
	require.NoError(t, err)
	return c
}

func TestTabsCycle(t *testing.T) {
	m := NewModel(context.Background(), testStore(t, store.NewState()))
	assert.Equal(t, TabDashboard, m.tab)

	m = press(t, m, "tab")
	assert.Equal(t, TabCalendar, m.tab)
	assert.Contains(t, m.View(), "March 2024")

	m = press(t, m, "tab", "tab")
	assert.Equal(t, TabMethods, m.tab)
	assert.Contains(t, m.View(), "LinkedIn Post")

	m = press(t, m, "tab")
	assert.Equal(t, TabDashboard, m.tab)
}

func TestOverrideFromDashboard(t *testing.T) {
	s := testStore(t, store.NewState())
	c := overdueCompany(t, s)

	m := NewModel(context.Background(), s)
	assert.Contains(t, m.View(), "Acme")

	m = press(t, m, "o")
	require.NoError(t, m.err)
	assert.True(t, s.Snapshot().IsOverridden(c.ID))
	assert.Empty(t, s.Schedule().Grids.Overdue)
	assert.Contains(t, m.View(), "Nothing overdue or due today.")
}

func TestMoveMethodKeys(t *testing.T) {
	s := testStore(t, store.NewState())
	first := s.Methods()[0]

	m := NewModel(context.Background(), s)
	m = press(t, m, "tab", "tab", "tab", "J")
	require.NoError(t, m.err)

	assert.Equal(t, first.ID, s.Methods()[1].ID)
	assert.Equal(t, 1, m.selectedRow, "cursor follows the moved method")

	m = press(t, m, "K")
	assert.Equal(t, first.ID, s.Methods()[0].ID)
	assert.Equal(t, 0, m.selectedRow)
}

func TestWarningBannerDismiss(t *testing.T) {
	st := store.NewState()
	st.Companies = []models.Company{{ID: uuid.New(), Name: "Broken", Location: "Nowhere", Periodicity: "often"}}
	m := NewModel(context.Background(), testStore(t, st))

	assert.Contains(t, m.View(), "Error calculating date for periodicity")

	m = press(t, m, "x")
	assert.NotContains(t, m.View(), "Error calculating date for periodicity")
}

func TestLogCommunicationForm(t *testing.T) {
	s := testStore(t, store.NewState())
	c := overdueCompany(t, s)

	m := NewModel(context.Background(), s)
	m = press(t, m, "l")
	require.Equal(t, ViewLog, m.viewMode)
	assert.Contains(t, m.View(), "LOG COMMUNICATION: Acme")

	m = press(t, m, "enter")
	require.NoError(t, m.err)
	assert.Equal(t, ViewList, m.viewMode)

	got, ok := s.Company(c.ID)
	require.True(t, ok)
	require.Len(t, got.History, 2)
	assert.Equal(t, "2024-03-04", got.History[0].Date)
}

func TestDeleteCompanyConfirm(t *testing.T) {
	s := testStore(t, store.NewState())
	overdueCompany(t, s)

	m := NewModel(context.Background(), s)
	m = press(t, m, "tab", "tab", "d")
	require.Equal(t, ViewConfirmDelete, m.viewMode)

	m = press(t, m, "n")
	assert.Equal(t, ViewList, m.viewMode)
	assert.Len(t, s.Companies(), 1)

	m = press(t, m, "d", "y")
	assert.Equal(t, ViewList, m.viewMode)
	assert.Empty(t, s.Companies())
}
