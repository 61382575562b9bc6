// ABOUTME: Data models for the communication cadence tracker
// ABOUTME: Defines Company, CommunicationMethod, Communication, and CalendarEvent structs
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// DateLayout is the ISO calendar date format used for every stored and derived date.
// Dates in this layout compare chronologically as plain strings.
const DateLayout = "2006-01-02"

// HistoryLimit is the number of past communications kept per company.
const HistoryLimit = 5

// DefaultPeriodicity is applied when a company is created without one.
const DefaultPeriodicity = "2 weeks"

// PeriodicityOptions is the fixed set of cadences offered when editing a company.
var PeriodicityOptions = []string{
	"1 day",
	"2 days",
	"3 days",
	"1 week",
	"2 weeks",
	"3 weeks",
	"1 month",
	"2 months",
	"3 months",
}

type Company struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Location              string          `json:"location"`
	LinkedIn              *string         `json:"linkedin,omitempty"`
	Emails                []string        `json:"emails,omitempty"`
	Phones                []string        `json:"phones,omitempty"`
	Comments              string          `json:"comments,omitempty"`
	Periodicity           string          `json:"periodicity"`
	NextCommunicationType string          `json:"next_communication_type,omitempty"`
	History               []Communication `json:"history,omitempty"` // most recent first
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// LastCommunication returns the most recent logged communication, if any.
func (c *Company) LastCommunication() (Communication, bool) {
	if len(c.History) == 0 {
		return Communication{}, false
	}
	return c.History[0], true
}

// Clone returns a deep copy so snapshots never share mutable slices.
func (c Company) Clone() Company {
	out := c
	if c.LinkedIn != nil {
		v := *c.LinkedIn
		out.LinkedIn = &v
	}
	if c.Emails != nil {
		out.Emails = append([]string(nil), c.Emails...)
	}
	if c.Phones != nil {
		out.Phones = append([]string(nil), c.Phones...)
	}
	if c.History != nil {
		out.History = append([]Communication(nil), c.History...)
	}
	return out
}

type CommunicationMethod struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sequence    int       `json:"sequence"` // 1-based rank, dense
	Mandatory   bool      `json:"mandatory"`
}

type Communication struct {
	ID    ulid.ULID `json:"id"`
	Type  string    `json:"type"`
	Date  string    `json:"date"` // DateLayout
	Notes string    `json:"notes,omitempty"`
}

// Status is the cadence bucket of a company on a given day.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "due-today"
	StatusUpcoming Status = "upcoming"
)

// Display palette for calendar events.
const (
	ColorOverdueBackground  = "#EF4444"
	ColorOverdueBorder      = "#DC2626"
	ColorDueTodayBackground = "#F59E0B"
	ColorDueTodayBorder     = "#D97706"
	ColorUpcomingBackground = "#3B82F6"
	ColorUpcomingBorder     = "#2563EB"
	ColorEventText          = "#FFFFFF"
)

// Fallback texts for events without a type hint or comments.
const (
	DefaultEventType  = "Scheduled Communication"
	DefaultEventNotes = "No additional notes."
)

// Colors returns the background and border colors for the status.
func (s Status) Colors() (background, border string) {
	switch s {
	case StatusOverdue:
		return ColorOverdueBackground, ColorOverdueBorder
	case StatusDueToday:
		return ColorDueTodayBackground, ColorDueTodayBorder
	default:
		return ColorUpcomingBackground, ColorUpcomingBorder
	}
}

// CalendarEvent is a projection of a company onto its next due date.
// It is regenerated on every read and never stored.
type CalendarEvent struct {
	CompanyID       uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Date            string    `json:"start"`
	Status          Status    `json:"status"`
	IsOverdue       bool      `json:"is_overdue"`
	IsDueToday      bool      `json:"is_due_today"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	TextColor       string    `json:"textColor"`
	Type            string    `json:"type"`
	Notes           string    `json:"notes"`
}

// SplitList turns a comma-separated form value into trimmed, non-empty entries.
// An empty input yields nil, meaning the field is absent.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DefaultMethods is the seed set of communication methods for a fresh store.
func DefaultMethods() []CommunicationMethod {
	seed := []struct {
		name, desc string
		mandatory  bool
	}{
		{"LinkedIn Post", "Post on LinkedIn", true},
		{"LinkedIn Message", "Message through LinkedIn", true},
		{"Email", "Email communication", true},
		{"Phone Call", "Phone call to the contact", true},
		{"Other", "Other communication methods", false},
	}

	methods := make([]CommunicationMethod, len(seed))
	for i, s := range seed {
		methods[i] = CommunicationMethod{
			ID:          uuid.New(),
			Name:        s.name,
			Description: s.desc,
			Sequence:    i + 1,
			Mandatory:   s.mandatory,
		}
	}
	return methods
}
