package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/store"
)

func setupTestCLI(t *testing.T) (*store.Store, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	prev := stdout
	stdout = buf
	t.Cleanup(func() { stdout = prev })

	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	s := store.New(store.NewState(),
		store.WithClock(func() time.Time { return now }),
		store.WithLocation(time.UTC),
		store.WithAnchor(cadence.AnchorLastCommunication),
	)
	return s, buf
}

func TestCompanyCommands(t *testing.T) {
	s, out := setupTestCLI(t)

	err := AddCompanyCommand(s, []string{
		"--name", "Acme", "--location", "Paris",
		"--email", "a@acme.com,b@acme.com", "--phone", "+33 1",
		"--periodicity", "2 weeks",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Company created: Acme")

	companies := s.Companies()
	require.Len(t, companies, 1)
	assert.Equal(t, []string{"a@acme.com", "b@acme.com"}, companies[0].Emails)
	assert.Equal(t, "2 weeks", companies[0].Periodicity)

	out.Reset()
	require.NoError(t, UpdateCompanyCommand(s, []string{"--location", "Lyon", "acme"}))
	got, _ := s.Company(companies[0].ID)
	assert.Equal(t, "Lyon", got.Location)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "2 weeks", got.Periodicity)

	out.Reset()
	require.NoError(t, ListCompaniesCommand(s, []string{"--query", "lyon"}))
	assert.Contains(t, out.String(), "Acme")
	assert.Contains(t, out.String(), "Total: 1 companies")

	out.Reset()
	require.NoError(t, ListCompaniesCommand(s, []string{"--query", "globex"}))
	assert.Contains(t, out.String(), "No companies found")

	err = DeleteCompanyCommand(s, []string{"Acme"})
	require.Error(t, err)
	assert.Len(t, s.Companies(), 1)

	require.NoError(t, DeleteCompanyCommand(s, []string{"--yes", "Acme"}))
	assert.Empty(t, s.Companies())
}

func TestAddCompanyValidation(t *testing.T) {
	s, _ := setupTestCLI(t)

	err := AddCompanyCommand(s, []string{"--name", "Acme"})
	require.ErrorIs(t, err, store.ErrValidation)

	err = AddCompanyCommand(s, []string{"--name", "Acme", "--location", "X", "--periodicity", "sometimes"})
	require.ErrorIs(t, err, store.ErrValidation)
	assert.Empty(t, s.Companies())
}

func TestLogAndHistoryCommands(t *testing.T) {
	s, out := setupTestCLI(t)
	require.NoError(t, AddCompanyCommand(s, []string{"--name", "Acme", "--location", "Paris", "--periodicity", "1 week"}))

	out.Reset()
	require.NoError(t, LogCommand(s, []string{"--company", "Acme", "--type", "email", "--date", "2024-02-26", "--notes", "intro"}))
	assert.Contains(t, out.String(), "✓ Logged Email with Acme on 2024-02-26")

	require.NoError(t, LogCommand(s, []string{"--company", "Acme", "--type", "Phone Call"}))

	out.Reset()
	require.NoError(t, HistoryCommand(s, []string{"Acme"}))
	history := out.String()
	assert.Contains(t, history, "2024-03-04")
	assert.Contains(t, history, "intro")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("2024-03-04")), bytes.Index(out.Bytes(), []byte("2024-02-26")))

	err := LogCommand(s, []string{"--company", "Acme", "--type", "Email", "--date", "2024-03-05"})
	require.ErrorIs(t, err, store.ErrValidation)

	err = LogCommand(s, []string{"--company", "Nobody", "--type", "Email"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMethodCommands(t *testing.T) {
	s, out := setupTestCLI(t)

	require.NoError(t, AddMethodCommand(s, []string{"--name", "Visit", "--description", "In person", "--sequence", "1"}))
	assert.Contains(t, out.String(), "✓ Method created: Visit (#1")

	methods := s.Methods()
	require.Len(t, methods, 6)
	assert.Equal(t, "Visit", methods[0].Name)
	assert.Equal(t, 2, methods[1].Sequence)

	out.Reset()
	require.NoError(t, MoveMethodCommand(s, []string{"Visit", "down"}))
	assert.Contains(t, out.String(), "Visit is now #2")

	require.NoError(t, UpdateMethodCommand(s, []string{"--description", "Face to face", "Visit"}))
	m, ok := s.Snapshot().MethodByName("visit")
	require.True(t, ok)
	assert.Equal(t, "Face to face", m.Description)
	assert.Equal(t, 2, m.Sequence)

	require.Error(t, MoveMethodCommand(s, []string{"Visit", "sideways"}))

	require.NoError(t, DeleteMethodCommand(s, []string{"--yes", "Visit"}))
	for i, m := range s.Methods() {
		assert.Equal(t, i+1, m.Sequence)
	}

	out.Reset()
	require.NoError(t, ListMethodsCommand(s, nil))
	assert.Contains(t, out.String(), "LinkedIn Post")
	assert.NotContains(t, out.String(), "Visit")
}

func TestScheduleCommands(t *testing.T) {
	s, out := setupTestCLI(t)
	require.NoError(t, AddCompanyCommand(s, []string{"--name", "Acme", "--location", "Paris", "--periodicity", "1 week"}))
	require.NoError(t, AddCompanyCommand(s, []string{"--name", "Globex", "--location", "Berlin", "--periodicity", "1 day"}))
	require.NoError(t, LogCommand(s, []string{"--company", "Acme", "--type", "Email", "--date", "2024-02-26"}))
	require.NoError(t, LogCommand(s, []string{"--company", "Globex", "--type", "Email", "--date", "2024-03-01"}))

	out.Reset()
	require.NoError(t, NotificationsCommand(s, nil))
	assert.Contains(t, out.String(), "🔔 2 notifications")
	assert.Contains(t, out.String(), "🔴 1 overdue")
	assert.Contains(t, out.String(), "🟡 1 due today")

	out.Reset()
	require.NoError(t, OverrideCommand(s, []string{"Globex"}))
	assert.True(t, s.Snapshot().IsOverridden(s.Companies()[1].ID))

	out.Reset()
	require.NoError(t, DashboardCommand(s, nil))
	assert.Contains(t, out.String(), "Acme")

	require.NoError(t, ClearOverrideCommand(s, []string{"Globex"}))
	assert.False(t, s.Snapshot().IsOverridden(s.Companies()[1].ID))

	out.Reset()
	require.NoError(t, CalendarCommand(s, []string{"--month", "2024-03"}))
	assert.Contains(t, out.String(), "March 2024")

	require.Error(t, CalendarCommand(s, []string{"--month", "March"}))
}

func TestExportICSCommand(t *testing.T) {
	s, out := setupTestCLI(t)
	require.NoError(t, AddCompanyCommand(s, []string{"--name", "Acme", "--location", "Paris"}))

	path := filepath.Join(t.TempDir(), "schedule.ics")
	out.Reset()
	require.NoError(t, ExportICSCommand(s, []string{"--output", path}))
	assert.Contains(t, out.String(), "✓ Exported 1 events")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Acme")
}
