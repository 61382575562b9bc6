// ABOUTME: iCalendar export of scheduled communications
// ABOUTME: Writes one all-day VEVENT per calendar event using go-ical
package ical

import (
	"fmt"
	"io"
	"time"

	goical "github.com/emersion/go-ical"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
)

const productID = "-//Sankar2i//calendar//EN"

// UIDSuffix keeps event UIDs stable across exports so subscribers update
// events in place instead of duplicating them.
const UIDSuffix = "@calendar"

// Encode writes events as a VCALENDAR stream. now is used for DTSTAMP.
func Encode(w io.Writer, events []models.CalendarEvent, now time.Time) error {
	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropVersion, "2.0")
	cal.Props.SetText(goical.PropProductID, productID)
	cal.Props.SetText(goical.PropCalendarScale, "GREGORIAN")

	for _, e := range events {
		day, err := cadence.ParseDate(e.Date)
		if err != nil {
			return fmt.Errorf("event for %s: %w", e.Title, err)
		}

		ev := goical.NewEvent()
		ev.Props.SetText(goical.PropUID, e.CompanyID.String()+UIDSuffix)
		ev.Props.SetDateTime(goical.PropDateTimeStamp, now.UTC())
		ev.Props.SetDate(goical.PropDateTimeStart, day)
		ev.Props.SetText(goical.PropSummary, fmt.Sprintf("%s: %s", e.Title, e.Type))
		ev.Props.SetText(goical.PropDescription, e.Notes)
		ev.Props.SetText(goical.PropCategories, string(e.Status))
		cal.Children = append(cal.Children, ev.Component)
	}

	return goical.NewEncoder(w).Encode(cal)
}
