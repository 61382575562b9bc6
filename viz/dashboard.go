// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides ASCII dashboard with notification badge, due grids, and recent history
package viz

import (
	"fmt"
	"strings"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
)

type DashboardStats struct {
	Today   string
	Counts  cadence.Counts
	Grids   cadence.Grids
	Warning string

	TotalCompanies int
	Overridden     int

	// Companies in insertion order with their next due event, if any
	Rows []CompanyRow
}

type CompanyRow struct {
	Name        string
	Location    string
	Periodicity string
	NextDue     string
	Status      models.Status
	Recent      []models.Communication
	Overridden  bool
}

func GenerateDashboardStats(sched store.Schedule) *DashboardStats {
	stats := &DashboardStats{
		Today:          sched.Today,
		Counts:         sched.Counts,
		Grids:          sched.Grids,
		Warning:        sched.Result.Warning,
		TotalCompanies: len(sched.State.Companies),
	}

	byID := make(map[string]models.CalendarEvent, len(sched.Result.Events))
	for _, e := range sched.Result.Events {
		byID[e.CompanyID.String()] = e
	}

	for _, c := range sched.State.Companies {
		row := CompanyRow{
			Name:        c.Name,
			Location:    c.Location,
			Periodicity: c.Periodicity,
			Recent:      c.History,
			Overridden:  sched.State.IsOverridden(c.ID),
		}
		if e, ok := byID[c.ID.String()]; ok {
			row.NextDue = e.Date
			row.Status = e.Status
		}
		if row.Overridden {
			stats.Overridden++
		}
		stats.Rows = append(stats.Rows, row)
	}

	return stats
}

// Indicator returns the traffic-light glyph for a status.
func Indicator(s models.Status) string {
	switch s {
	case models.StatusOverdue:
		return "🔴"
	case models.StatusDueToday:
		return "🟡"
	case models.StatusUpcoming:
		return "🟢"
	}
	return "⚪"
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString(fmt.Sprintf("  COMMUNICATION DASHBOARD  %s\n", stats.Today))
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	if stats.Warning != "" {
		out.WriteString(fmt.Sprintf("⚠️  %s\n\n", stats.Warning))
	}

	out.WriteString("NOTIFICATIONS\n")
	out.WriteString(fmt.Sprintf("  🔔 %d  (%d overdue, %d due today)\n\n",
		stats.Counts.Total, stats.Counts.Overdue, stats.Counts.DueToday))

	renderGrid(&out, "OVERDUE", stats.Grids.Overdue)
	renderGrid(&out, "DUE TODAY", stats.Grids.DueToday)

	out.WriteString("COMPANIES\n")
	if len(stats.Rows) == 0 {
		out.WriteString("  (none)\n")
	}
	for _, row := range stats.Rows {
		marker := Indicator(row.Status)
		if row.Overridden {
			marker = "⚪"
		}
		next := row.NextDue
		if next == "" {
			next = "n/a"
		}
		out.WriteString(fmt.Sprintf("  %s %-24s %-16s every %-9s next %s\n",
			marker, row.Name, row.Location, row.Periodicity, next))
		for _, c := range row.Recent {
			out.WriteString(fmt.Sprintf("       %s  %s\n", c.Date, c.Type))
		}
	}

	if stats.Overridden > 0 {
		out.WriteString(fmt.Sprintf("\n  %d highlight(s) overridden\n", stats.Overridden))
	}

	return out.String()
}

func renderGrid(out *strings.Builder, title string, events []models.CalendarEvent) {
	out.WriteString(fmt.Sprintf("%s (%d)\n", title, len(events)))
	if len(events) == 0 {
		out.WriteString("  (none)\n\n")
		return
	}
	for _, e := range events {
		out.WriteString(fmt.Sprintf("  %s %-24s %s  %s\n", Indicator(e.Status), e.Title, e.Date, e.Type))
	}
	out.WriteString("\n")
}
