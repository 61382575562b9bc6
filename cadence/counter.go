// ABOUTME: Notification counts and dashboard grids derived from scheduled events
// ABOUTME: Counts overdue/due-today badges and applies highlight overrides
package cadence

import (
	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/models"
)

type Counts struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	Total    int `json:"total"`
}

// Count tallies the notification badge. Upcoming events are not counted.
func Count(events []models.CalendarEvent) Counts {
	var c Counts
	for _, e := range events {
		switch e.Status {
		case models.StatusOverdue:
			c.Overdue++
		case models.StatusDueToday:
			c.DueToday++
		}
	}
	c.Total = c.Overdue + c.DueToday
	return c
}

// Grids groups events for the dashboard.
type Grids struct {
	Overdue  []models.CalendarEvent `json:"overdue"`
	DueToday []models.CalendarEvent `json:"due_today"`
	Upcoming []models.CalendarEvent `json:"upcoming"`
}

// Partition splits events by status. Companies in overrides are dropped from
// the overdue and due-today grids only; their schedule is unchanged.
func Partition(events []models.CalendarEvent, overrides map[uuid.UUID]bool) Grids {
	var g Grids
	for _, e := range events {
		switch e.Status {
		case models.StatusOverdue:
			if !overrides[e.CompanyID] {
				g.Overdue = append(g.Overdue, e)
			}
		case models.StatusDueToday:
			if !overrides[e.CompanyID] {
				g.DueToday = append(g.DueToday, e)
			}
		default:
			g.Upcoming = append(g.Upcoming, e)
		}
	}
	return g
}
