// ABOUTME: Communication method commands with dense sequence ordering
// ABOUTME: Insert, update, delete, and reorder all renumber sequences to 1..N
package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/models"
)

// Direction moves a method one slot in the sequence.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// AddMethod inserts a method at Method.Sequence (0 appends).
type AddMethod struct {
	Method models.CommunicationMethod
}

// UpdateMethod replaces a method's fields; a changed Sequence moves it.
type UpdateMethod struct {
	Method models.CommunicationMethod
}

type DeleteMethod struct {
	ID uuid.UUID
}

// MoveMethod swaps a method with its neighbour. Moving past either end is a no-op.
type MoveMethod struct {
	ID        uuid.UUID
	Direction Direction
}

// ReorderMethods sets the full order; IDs must be a permutation of the current methods.
type ReorderMethods struct {
	IDs []uuid.UUID
}

func renumber(methods []models.CommunicationMethod) {
	for i := range methods {
		methods[i].Sequence = i + 1
	}
}

// insertAt places m at 1-based position pos, clamped to the valid range.
func insertAt(methods []models.CommunicationMethod, m models.CommunicationMethod, pos int) []models.CommunicationMethod {
	if pos <= 0 || pos > len(methods)+1 {
		pos = len(methods) + 1
	}
	idx := pos - 1
	methods = append(methods, models.CommunicationMethod{})
	copy(methods[idx+1:], methods[idx:])
	methods[idx] = m
	renumber(methods)
	return methods
}

func (s *State) validateMethod(m *models.CommunicationMethod) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Description = strings.TrimSpace(m.Description)

	if m.Name == "" {
		return invalid("name", "name is required")
	}
	if m.Description == "" {
		return invalid("description", "description is required")
	}
	for _, other := range s.Methods {
		if other.ID != m.ID && strings.EqualFold(other.Name, m.Name) {
			return invalid("name", "a method named %q already exists", other.Name)
		}
	}
	return nil
}

func (a AddMethod) apply(s *State, _ Env) error {
	m := a.Method
	if m.ID == uuid.Nil {
		return invalid("id", "method id must be assigned before it is added")
	}
	if s.methodIndex(m.ID) >= 0 {
		return invalid("id", "method %s already exists", m.ID)
	}
	if err := s.validateMethod(&m); err != nil {
		return err
	}

	s.Methods = insertAt(s.Methods, m, m.Sequence)
	return nil
}

func (a UpdateMethod) apply(s *State, _ Env) error {
	i := s.methodIndex(a.Method.ID)
	if i < 0 {
		return fmt.Errorf("method %s: %w", a.Method.ID, ErrNotFound)
	}

	m := a.Method
	if err := s.validateMethod(&m); err != nil {
		return err
	}

	if m.Sequence == 0 || m.Sequence == s.Methods[i].Sequence {
		m.Sequence = s.Methods[i].Sequence
		s.Methods[i] = m
		return nil
	}

	rest := append(s.Methods[:i:i], s.Methods[i+1:]...)
	s.Methods = insertAt(rest, m, m.Sequence)
	return nil
}

func (a DeleteMethod) apply(s *State, _ Env) error {
	i := s.methodIndex(a.ID)
	if i < 0 {
		return fmt.Errorf("method %s: %w", a.ID, ErrNotFound)
	}
	s.Methods = append(s.Methods[:i], s.Methods[i+1:]...)
	renumber(s.Methods)
	return nil
}

func (a MoveMethod) apply(s *State, _ Env) error {
	i := s.methodIndex(a.ID)
	if i < 0 {
		return fmt.Errorf("method %s: %w", a.ID, ErrNotFound)
	}

	var j int
	switch a.Direction {
	case Up:
		j = i - 1
	case Down:
		j = i + 1
	default:
		return invalid("direction", "%q is not up or down", a.Direction)
	}
	if j < 0 || j >= len(s.Methods) {
		return nil
	}

	s.Methods[i], s.Methods[j] = s.Methods[j], s.Methods[i]
	renumber(s.Methods)
	return nil
}

func (a ReorderMethods) apply(s *State, _ Env) error {
	if len(a.IDs) != len(s.Methods) {
		return invalid("order", "expected %d method ids, got %d", len(s.Methods), len(a.IDs))
	}

	seen := make(map[uuid.UUID]bool, len(a.IDs))
	ordered := make([]models.CommunicationMethod, 0, len(a.IDs))
	for _, id := range a.IDs {
		i := s.methodIndex(id)
		if i < 0 {
			return fmt.Errorf("method %s: %w", id, ErrNotFound)
		}
		if seen[id] {
			return invalid("order", "method %s listed twice", id)
		}
		seen[id] = true
		ordered = append(ordered, s.Methods[i])
	}

	renumber(ordered)
	s.Methods = ordered
	return nil
}
