// ABOUTME: ASCII month view of scheduled communications
// ABOUTME: Marks each day with the worst status of the events due on it
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
)

var statusRank = map[models.Status]int{
	models.StatusUpcoming: 1,
	models.StatusDueToday: 2,
	models.StatusOverdue:  3,
}

// RenderMonth draws the month containing month (any day in it) as a
// Monday-first grid followed by the list of events in that month.
func RenderMonth(month time.Time, events []models.CalendarEvent, today string) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	prefix := first.Format("2006-01-")

	worst := map[int]models.Status{}
	var inMonth []models.CalendarEvent
	for _, e := range events {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		d, err := cadence.ParseDate(e.Date)
		if err != nil {
			continue
		}
		inMonth = append(inMonth, e)
		if statusRank[e.Status] > statusRank[worst[d.Day()]] {
			worst[d.Day()] = e.Status
		}
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s\n", first.Format("January 2006")))
	out.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")

	// Monday = 0
	offset := (int(first.Weekday()) + 6) % 7
	out.WriteString(strings.Repeat("    ", offset))
	for day := 1; day <= last.Day(); day++ {
		mark := " "
		switch worst[day] {
		case models.StatusOverdue:
			mark = "!"
		case models.StatusDueToday:
			mark = "*"
		case models.StatusUpcoming:
			mark = "+"
		}
		if first.AddDate(0, 0, day-1).Format(models.DateLayout) == today {
			out.WriteString(fmt.Sprintf("[%2d]", day))
		} else {
			out.WriteString(fmt.Sprintf("%2d%s ", day, mark))
		}
		if (offset+day)%7 == 0 {
			out.WriteString("\n")
		}
	}
	if (offset+last.Day())%7 != 0 {
		out.WriteString("\n")
	}
	out.WriteString("\n! overdue  * due today  + upcoming\n")

	if len(inMonth) > 0 {
		out.WriteString("\n")
		sorted := append([]models.CalendarEvent(nil), inMonth...)
		cadence.SortByDate(sorted)
		for _, e := range sorted {
			out.WriteString(fmt.Sprintf("  %s %s  %-24s %s\n", Indicator(e.Status), e.Date, e.Title, e.Type))
		}
	}

	return out.String()
}
