package viz

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

func scheduleFixture(t *testing.T) store.Schedule {
	t.Helper()
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	s := store.New(store.NewState(),
		store.WithClock(func() time.Time { return now }),
		store.WithLocation(time.UTC),
		store.WithAnchor(cadence.AnchorLastCommunication),
	)
	ctx := context.Background()

	acme, err := s.CreateCompany(ctx, models.Company{Name: "Acme", Location: "Paris", Periodicity: "1 week"})
	require.NoError(t, err)
	_, err = s.LogCommunication(ctx, acme.ID, models.Communication{Type: "Email", Date: "2024-02-26"})
	require.NoError(t, err)

	globex, err := s.CreateCompany(ctx, models.Company{Name: "Globex", Location: "Springfield", Periodicity: "1 day"})
	require.NoError(t, err)
	_, err = s.LogCommunication(ctx, globex.ID, models.Communication{Type: "Phone Call", Date: "2024-03-01"})
	require.NoError(t, err)

	return s.Schedule()
}

func TestGenerateDashboardStats(t *testing.T) {
	stats := GenerateDashboardStats(scheduleFixture(t))

	assert.Equal(t, "2024-03-04", stats.Today)
	assert.Equal(t, 2, stats.TotalCompanies)
	assert.Equal(t, cadence.Counts{Overdue: 1, DueToday: 1, Total: 2}, stats.Counts)
	require.Len(t, stats.Rows, 2)
	assert.Equal(t, "2024-03-04", stats.Rows[0].NextDue)
	assert.Equal(t, models.StatusDueToday, stats.Rows[0].Status)
	assert.Equal(t, models.StatusOverdue, stats.Rows[1].Status)
}

func TestRenderDashboard(t *testing.T) {
	out := RenderDashboard(GenerateDashboardStats(scheduleFixture(t)))

	assert.Contains(t, out, "COMMUNICATION DASHBOARD  2024-03-04")
	assert.Contains(t, out, "🔔 2  (1 overdue, 1 due today)")
	assert.Contains(t, out, "OVERDUE (1)")
	assert.Contains(t, out, "DUE TODAY (1)")
	assert.Contains(t, out, "2024-02-26  Email")
	assert.NotContains(t, out, "⚠️")
}

func TestRenderDashboardWarning(t *testing.T) {
	stats := &DashboardStats{
		Today:   "2024-03-04",
		Warning: "Error calculating date for periodicity: bad",
		Rows:    []CompanyRow{{Name: "Broken", Location: "Nowhere", Periodicity: "often"}},
	}
	out := RenderDashboard(stats)
	assert.Contains(t, out, "⚠️  Error calculating date for periodicity: bad")
	assert.Contains(t, out, "next n/a")
}

func TestIndicator(t *testing.T) {
	assert.Equal(t, "🔴", Indicator(models.StatusOverdue))
	assert.Equal(t, "🟡", Indicator(models.StatusDueToday))
	assert.Equal(t, "🟢", Indicator(models.StatusUpcoming))
	assert.Equal(t, "⚪", Indicator(""))
}

func TestRenderMonth(t *testing.T) {
	events := []models.CalendarEvent{
		{CompanyID: uuid.New(), Title: "Later", Date: "2024-03-20", Status: models.StatusUpcoming, Type: "Email"},
		{CompanyID: uuid.New(), Title: "Late", Date: "2024-03-01", Status: models.StatusOverdue, Type: "Email"},
		{CompanyID: uuid.New(), Title: "Elsewhere", Date: "2024-04-02", Status: models.StatusUpcoming},
	}

	out := RenderMonth(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), events, "2024-03-04")

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, " 1! ")
	assert.Contains(t, out, "20+ ")
	assert.Contains(t, out, "[ 4]")
	assert.NotContains(t, out, "Elsewhere")
	assert.Less(t, strings.Index(out, "Late "), strings.Index(out, "Later"), "events are listed by date")
}

