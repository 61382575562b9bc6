// ABOUTME: Immutable state snapshot for companies, methods, and highlight overrides
// ABOUTME: Provides lookups and deep copies used by the reducer
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a rejected field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// State is one published snapshot. Values handed out by a Store must be
// treated as read-only; the reducer always works on a deep copy.
type State struct {
	Companies []models.Company             `json:"companies"`
	Methods   []models.CommunicationMethod `json:"communication_methods"` // ordered by Sequence
	Overrides map[uuid.UUID]bool           `json:"highlight_overrides,omitempty"`
}

// NewState returns an empty state seeded with the default communication methods.
func NewState() State {
	return State{
		Methods:   models.DefaultMethods(),
		Overrides: map[uuid.UUID]bool{},
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{
		Companies: make([]models.Company, len(s.Companies)),
		Methods:   append([]models.CommunicationMethod(nil), s.Methods...),
		Overrides: make(map[uuid.UUID]bool, len(s.Overrides)),
	}
	for i, c := range s.Companies {
		out.Companies[i] = c.Clone()
	}
	for id, v := range s.Overrides {
		if v {
			out.Overrides[id] = true
		}
	}
	return out
}

func (s *State) companyIndex(id uuid.UUID) int {
	for i := range s.Companies {
		if s.Companies[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) methodIndex(id uuid.UUID) int {
	for i := range s.Methods {
		if s.Methods[i].ID == id {
			return i
		}
	}
	return -1
}

// Company looks up a company by ID.
func (s State) Company(id uuid.UUID) (models.Company, bool) {
	if i := s.companyIndex(id); i >= 0 {
		return s.Companies[i].Clone(), true
	}
	return models.Company{}, false
}

// FindCompanyByName does a case-insensitive exact name match.
func (s State) FindCompanyByName(name string) (models.Company, bool) {
	for _, c := range s.Companies {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c.Clone(), true
		}
	}
	return models.Company{}, false
}

// Method looks up a communication method by ID.
func (s State) Method(id uuid.UUID) (models.CommunicationMethod, bool) {
	if i := s.methodIndex(id); i >= 0 {
		return s.Methods[i], true
	}
	return models.CommunicationMethod{}, false
}

// MethodByName does a case-insensitive exact name match.
func (s State) MethodByName(name string) (models.CommunicationMethod, bool) {
	for _, m := range s.Methods {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return models.CommunicationMethod{}, false
}

// IsOverridden reports whether the company's highlight is suppressed.
func (s State) IsOverridden(id uuid.UUID) bool {
	return s.Overrides[id]
}
