// ABOUTME: Command objects and the pure reducer that applies them to a State
// ABOUTME: Handles company CRUD and highlight overrides; methods and history live alongside
package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
)

// Env carries the values a transition may depend on, so Reduce stays pure.
type Env struct {
	Now   time.Time
	Today string // ISO date of Now in the store's location
}

// Action is a state transition command.
type Action interface {
	apply(s *State, env Env) error
}

// Reduce applies a to old and returns the resulting state. old is never
// modified; on error old is returned unchanged.
func Reduce(old State, env Env, a Action) (State, error) {
	next := old.Clone()
	if err := a.apply(&next, env); err != nil {
		return old, err
	}
	return next, nil
}

type AddCompany struct {
	Company models.Company
}

type UpdateCompany struct {
	Company models.Company
}

type DeleteCompany struct {
	ID uuid.UUID
}

// OverrideHighlight hides a company from the overdue and due-today grids
// without touching its schedule.
type OverrideHighlight struct {
	CompanyID uuid.UUID
}

// ClearOverride restores the highlight; clearing a company with no override is a no-op.
type ClearOverride struct {
	CompanyID uuid.UUID
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func normalizeCompany(c models.Company) (models.Company, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Location = strings.TrimSpace(c.Location)
	c.Comments = strings.TrimSpace(c.Comments)
	c.Periodicity = strings.TrimSpace(c.Periodicity)
	c.NextCommunicationType = strings.TrimSpace(c.NextCommunicationType)

	if c.Name == "" {
		return c, invalid("name", "name is required")
	}
	if c.Location == "" {
		return c, invalid("location", "location is required")
	}

	if c.LinkedIn != nil {
		link := strings.TrimSpace(*c.LinkedIn)
		switch {
		case link == "":
			c.LinkedIn = nil
		case !strings.Contains(strings.ToLower(link), "linkedin.com"):
			return c, invalid("linkedin", "%q is not a LinkedIn URL", link)
		default:
			c.LinkedIn = &link
		}
	}

	emails := c.Emails[:0:0]
	for _, e := range c.Emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !emailPattern.MatchString(e) {
			return c, invalid("emails", "%q is not an email address", e)
		}
		emails = append(emails, e)
	}
	c.Emails = nil
	if len(emails) > 0 {
		c.Emails = emails
	}

	phones := c.Phones[:0:0]
	for _, p := range c.Phones {
		if p = strings.TrimSpace(p); p != "" {
			phones = append(phones, p)
		}
	}
	c.Phones = nil
	if len(phones) > 0 {
		c.Phones = phones
	}

	if c.Periodicity == "" {
		c.Periodicity = models.DefaultPeriodicity
	}
	iv, err := cadence.ParsePeriodicity(c.Periodicity)
	if err != nil {
		return c, invalid("periodicity", "%v", err)
	}
	c.Periodicity = iv.String()

	return c, nil
}

func (a AddCompany) apply(s *State, env Env) error {
	if a.Company.ID == uuid.Nil {
		return invalid("id", "company id must be assigned before it is added")
	}
	if s.companyIndex(a.Company.ID) >= 0 {
		return invalid("id", "company %s already exists", a.Company.ID)
	}

	c, err := normalizeCompany(a.Company.Clone())
	if err != nil {
		return err
	}
	c.History = nil
	c.CreatedAt = env.Now
	c.UpdatedAt = env.Now

	s.Companies = append(s.Companies, c)
	return nil
}

func (a UpdateCompany) apply(s *State, env Env) error {
	i := s.companyIndex(a.Company.ID)
	if i < 0 {
		return fmt.Errorf("company %s: %w", a.Company.ID, ErrNotFound)
	}

	c, err := normalizeCompany(a.Company.Clone())
	if err != nil {
		return err
	}

	existing := s.Companies[i]
	c.ID = existing.ID
	c.History = existing.History
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = env.Now

	s.Companies[i] = c
	return nil
}

func (a DeleteCompany) apply(s *State, _ Env) error {
	i := s.companyIndex(a.ID)
	if i < 0 {
		return fmt.Errorf("company %s: %w", a.ID, ErrNotFound)
	}
	s.Companies = append(s.Companies[:i], s.Companies[i+1:]...)
	delete(s.Overrides, a.ID)
	return nil
}

func (a OverrideHighlight) apply(s *State, _ Env) error {
	if s.companyIndex(a.CompanyID) < 0 {
		return fmt.Errorf("company %s: %w", a.CompanyID, ErrNotFound)
	}
	s.Overrides[a.CompanyID] = true
	return nil
}

func (a ClearOverride) apply(s *State, _ Env) error {
	if s.companyIndex(a.CompanyID) < 0 {
		return fmt.Errorf("company %s: %w", a.CompanyID, ErrNotFound)
	}
	delete(s.Overrides, a.CompanyID)
	return nil
}
