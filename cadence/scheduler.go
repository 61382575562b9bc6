// ABOUTME: Aggregate scheduler that projects companies onto calendar events
// ABOUTME: Isolates per-company failures so one bad record never blanks the calendar
package cadence

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Sankar2i/calendar/models"
)

// Anchor selects the base date the next due date is computed from.
type Anchor string

const (
	// AnchorNow schedules every company one period after today.
	AnchorNow Anchor = "now"
	// AnchorLastCommunication schedules one period after the latest logged
	// communication, or after the company's creation date when nothing is logged.
	AnchorLastCommunication Anchor = "last_communication"
)

// ParseAnchor accepts the config spellings of an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "now", "today":
		return AnchorNow, nil
	case "last_communication", "last-communication", "lastcommunication", "history":
		return AnchorLastCommunication, nil
	}
	return "", fmt.Errorf("unknown schedule anchor %q (want now or last_communication)", s)
}

// Scheduler builds calendar events from company records.
type Scheduler struct {
	Anchor   Anchor
	Location *time.Location // used to turn CreatedAt into a calendar date
	Logger   zerolog.Logger
}

// NewScheduler returns a scheduler anchored at today with a no-op logger.
func NewScheduler() *Scheduler {
	return &Scheduler{
		Anchor:   AnchorNow,
		Location: time.UTC,
		Logger:   zerolog.Nop(),
	}
}

// Result is the output of one scheduling pass.
type Result struct {
	Events  []models.CalendarEvent `json:"events"`
	Warning string                 `json:"warning,omitempty"`
	Skipped []uuid.UUID            `json:"skipped,omitempty"`
}

// BuildEvents computes one event per company, in input order. Companies whose
// periodicity or base date cannot be computed are left out and reported
// through a single Warning.
func (s *Scheduler) BuildEvents(companies []models.Company, today string) Result {
	res := Result{Events: make([]models.CalendarEvent, 0, len(companies))}

	var firstFailure string
	for i := range companies {
		c := &companies[i]

		event, err := s.buildEvent(c, today)
		if err != nil {
			s.Logger.Warn().
				Err(err).
				Str("company_id", c.ID.String()).
				Str("company", c.Name).
				Str("periodicity", c.Periodicity).
				Msg("skipping company in schedule")

			if firstFailure == "" {
				firstFailure = c.Periodicity
			}
			res.Skipped = append(res.Skipped, c.ID)
			continue
		}
		res.Events = append(res.Events, event)
	}

	if len(res.Skipped) > 0 {
		res.Warning = fmt.Sprintf("Error calculating date for periodicity: %s", firstFailure)
		if extra := len(res.Skipped) - 1; extra > 0 {
			res.Warning += fmt.Sprintf(" (and %d more)", extra)
		}
	}

	return res
}

func (s *Scheduler) buildEvent(c *models.Company, today string) (models.CalendarEvent, error) {
	if _, err := ParseDate(today); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("today: %w", err)
	}

	iv, err := ParsePeriodicity(c.Periodicity)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	next, err := NextDate(s.baseDate(c, today), iv)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	class := Classify(next, today)
	background, border := class.Status.Colors()

	eventType := c.NextCommunicationType
	if eventType == "" {
		eventType = models.DefaultEventType
	}
	notes := c.Comments
	if notes == "" {
		notes = models.DefaultEventNotes
	}

	return models.CalendarEvent{
		CompanyID:       c.ID,
		Title:           c.Name,
		Date:            next,
		Status:          class.Status,
		IsOverdue:       class.IsOverdue,
		IsDueToday:      class.IsDueToday,
		BackgroundColor: background,
		BorderColor:     border,
		TextColor:       models.ColorEventText,
		Type:            eventType,
		Notes:           notes,
	}, nil
}

func (s *Scheduler) baseDate(c *models.Company, today string) string {
	if s.Anchor != AnchorLastCommunication {
		return today
	}
	if last, ok := c.LastCommunication(); ok {
		return last.Date
	}
	if !c.CreatedAt.IsZero() {
		return Today(c.CreatedAt, s.Location)
	}
	return today
}

// SortByDate orders events by due date, keeping input order for equal dates.
func SortByDate(events []models.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}
