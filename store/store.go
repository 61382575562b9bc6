// ABOUTME: Copy-on-write state container that serialises writers and publishes snapshots
// ABOUTME: Exposes CRUD, history logging, and schedule queries for every front end
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/Sankar2i/calendar/cadence"
	"github.com/Sankar2i/calendar/models"
)

// Persister is an optional serialization boundary. Save is called with the
// fully derived next state before it is published; a failed Save leaves the
// published state unchanged.
type Persister interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, st State) error
}

// Store owns the current State. Writers are serialised; readers load the
// published snapshot without locking and never see a partial update.
type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[State]
	persister Persister
	now       func() time.Time
	loc       *time.Location
	anchor    cadence.Anchor
	logger    zerolog.Logger
}

type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithAnchor(a cadence.Anchor) Option {
	return func(s *Store) { s.anchor = a }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// New creates a store holding initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		loc:    time.Local,
		anchor: cadence.AnchorNow,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	st := initial.Clone()
	s.current.Store(&st)
	return s
}

// Open loads state from p, seeding the default methods when p has never been written.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	st, ok, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if !ok {
		st = NewState()
	}
	return New(st, append(opts, WithPersister(p))...), nil
}

// Snapshot returns the published state. Treat it as read-only.
func (s *Store) Snapshot() State {
	return *s.current.Load()
}

// Today samples the clock and returns the current ISO date.
func (s *Store) Today() string {
	return cadence.Today(s.now(), s.loc)
}

func (s *Store) env() Env {
	now := s.now()
	return Env{Now: now, Today: cadence.Today(now, s.loc)}
}

// Dispatch applies a command and publishes the result.
func (s *Store) Dispatch(ctx context.Context, a Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := *s.current.Load()
	next, err := Reduce(old, s.env(), a)
	if err != nil {
		return old, err
	}

	if s.persister != nil {
		if err := s.persister.Save(ctx, next); err != nil {
			return old, fmt.Errorf("failed to save state: %w", err)
		}
	}

	s.current.Store(&next)
	s.logger.Debug().Str("action", fmt.Sprintf("%T", a)).Msg("state updated")
	return next, nil
}

// Companies returns a copy of the companies in insertion order.
func (s *Store) Companies() []models.Company {
	st := s.Snapshot()
	out := make([]models.Company, len(st.Companies))
	for i, c := range st.Companies {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) Company(id uuid.UUID) (models.Company, bool) {
	return s.Snapshot().Company(id)
}

// Methods returns a copy of the methods in sequence order.
func (s *Store) Methods() []models.CommunicationMethod {
	return append([]models.CommunicationMethod(nil), s.Snapshot().Methods...)
}

// CreateCompany assigns an ID and adds the company.
func (s *Store) CreateCompany(ctx context.Context, c models.Company) (*models.Company, error) {
	c.ID = uuid.New()
	st, err := s.Dispatch(ctx, AddCompany{Company: c})
	if err != nil {
		return nil, err
	}
	created, _ := st.Company(c.ID)
	return &created, nil
}

func (s *Store) UpdateCompany(ctx context.Context, c models.Company) (*models.Company, error) {
	st, err := s.Dispatch(ctx, UpdateCompany{Company: c})
	if err != nil {
		return nil, err
	}
	updated, _ := st.Company(c.ID)
	return &updated, nil
}

func (s *Store) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	_, err := s.Dispatch(ctx, DeleteCompany{ID: id})
	return err
}

// CreateMethod assigns an ID and inserts the method at its requested sequence.
func (s *Store) CreateMethod(ctx context.Context, m models.CommunicationMethod) (*models.CommunicationMethod, error) {
	m.ID = uuid.New()
	st, err := s.Dispatch(ctx, AddMethod{Method: m})
	if err != nil {
		return nil, err
	}
	created, _ := st.Method(m.ID)
	return &created, nil
}

func (s *Store) UpdateMethod(ctx context.Context, m models.CommunicationMethod) (*models.CommunicationMethod, error) {
	st, err := s.Dispatch(ctx, UpdateMethod{Method: m})
	if err != nil {
		return nil, err
	}
	updated, _ := st.Method(m.ID)
	return &updated, nil
}

func (s *Store) DeleteMethod(ctx context.Context, id uuid.UUID) error {
	_, err := s.Dispatch(ctx, DeleteMethod{ID: id})
	return err
}

func (s *Store) MoveMethod(ctx context.Context, id uuid.UUID, dir Direction) error {
	_, err := s.Dispatch(ctx, MoveMethod{ID: id, Direction: dir})
	return err
}

func (s *Store) ReorderMethods(ctx context.Context, ids []uuid.UUID) error {
	_, err := s.Dispatch(ctx, ReorderMethods{IDs: ids})
	return err
}

// LogCommunication validates entry and prepends it to the company's history.
// An unknown company yields ErrNotFound and leaves the state untouched.
func (s *Store) LogCommunication(ctx context.Context, companyID uuid.UUID, entry models.Communication) (*models.Company, error) {
	if entry.ID == (ulid.ULID{}) {
		entry.ID = ulid.Make()
	}
	st, err := s.Dispatch(ctx, LogCommunication{CompanyID: companyID, Entry: entry})
	if err != nil {
		return nil, err
	}
	updated, _ := st.Company(companyID)
	return &updated, nil
}

func (s *Store) OverrideHighlight(ctx context.Context, companyID uuid.UUID) error {
	_, err := s.Dispatch(ctx, OverrideHighlight{CompanyID: companyID})
	return err
}

func (s *Store) ClearOverride(ctx context.Context, companyID uuid.UUID) error {
	_, err := s.Dispatch(ctx, ClearOverride{CompanyID: companyID})
	return err
}

// Scheduler returns a scheduler configured with the store's anchor and zone.
func (s *Store) Scheduler() *cadence.Scheduler {
	return &cadence.Scheduler{Anchor: s.anchor, Location: s.loc, Logger: s.logger}
}

// Schedule is one consistent read of the calendar: all values derive from
// the same snapshot and the same sampled day.
type Schedule struct {
	Today  string
	State  State
	Result cadence.Result
	Counts cadence.Counts
	Grids  cadence.Grids
}

// Schedule samples today once and builds events, counts, and dashboard grids.
func (s *Store) Schedule() Schedule {
	st := s.Snapshot()
	today := s.Today()
	res := s.Scheduler().BuildEvents(st.Companies, today)
	return Schedule{
		Today:  today,
		State:  st,
		Result: res,
		Counts: cadence.Count(res.Events),
		Grids:  cadence.Partition(res.Events, st.Overrides),
	}
}
