// ABOUTME: Communication history command for companies
// ABOUTME: Validates log entries, prepends them, and keeps the five most recent
package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
)

// HistoryLimit is the number of communications retained per company.
const HistoryLimit = models.HistoryLimit

// LogCommunication prepends Entry to the company's history.
type LogCommunication struct {
	CompanyID uuid.UUID
	Entry     models.Communication
}

func (s *State) validateEntry(e *models.Communication, today string) error {
	e.Type = strings.TrimSpace(e.Type)
	e.Date = strings.TrimSpace(e.Date)
	e.Notes = strings.TrimSpace(e.Notes)

	if e.Type == "" {
		return invalid("type", "communication type is required")
	}
	m, ok := s.MethodByName(e.Type)
	if !ok {
		return invalid("type", "%q is not a known communication method", e.Type)
	}
	e.Type = m.Name

	if e.Date == "" {
		return invalid("date", "communication date is required")
	}
	if _, err := cadence.ParseDate(e.Date); err != nil {
		return invalid("date", "%v", err)
	}
	if e.Date > today {
		return invalid("date", "%s is in the future", e.Date)
	}
	return nil
}

func (a LogCommunication) apply(s *State, env Env) error {
	entry := a.Entry
	if err := s.validateEntry(&entry, env.Today); err != nil {
		return err
	}

	i := s.companyIndex(a.CompanyID)
	if i < 0 {
		return fmt.Errorf("company %s: %w", a.CompanyID, ErrNotFound)
	}

	c := &s.Companies[i]
	history := make([]models.Communication, 0, HistoryLimit)
	history = append(history, entry)
	for _, prev := range c.History {
		if len(history) == HistoryLimit {
			break
		}
		history = append(history, prev)
	}
	c.History = history
	c.UpdatedAt = env.Now
	return nil
}
