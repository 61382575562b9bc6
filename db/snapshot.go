// ABOUTME: Snapshot repository that persists the whole store state in one transaction
// ABOUTME: Implements store.Persister on top of SQLite
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sankar2i/calendar/store"
)

// SnapshotRepository saves and loads complete store states.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ store.Persister = (*SnapshotRepository)(nil)

// Load reads the persisted state. The bool is false when nothing was ever saved.
func (r *SnapshotRepository) Load(ctx context.Context) (store.State, bool, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return store.State{}, false, err
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := isInitialized(ctx, tx)
	if err != nil {
		return store.State{}, false, fmt.Errorf("failed to read meta: %w", err)
	}
	if !ok {
		return store.State{}, false, nil
	}

	companies, err := listCompanies(ctx, tx)
	if err != nil {
		return store.State{}, false, fmt.Errorf("failed to load companies: %w", err)
	}
	histories, err := listHistories(ctx, tx)
	if err != nil {
		return store.State{}, false, fmt.Errorf("failed to load communications: %w", err)
	}
	for i := range companies {
		companies[i].History = histories[companies[i].ID]
	}

	methods, err := listMethods(ctx, tx)
	if err != nil {
		return store.State{}, false, fmt.Errorf("failed to load methods: %w", err)
	}
	overrides, err := listOverrides(ctx, tx)
	if err != nil {
		return store.State{}, false, fmt.Errorf("failed to load overrides: %w", err)
	}

	return store.State{Companies: companies, Methods: methods, Overrides: overrides}, true, nil
}

// Save replaces the persisted state with st atomically.
func (r *SnapshotRepository) Save(ctx context.Context, st store.State) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"highlight_overrides", "communications", "companies", "communication_methods"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i := range st.Methods {
		if err := insertMethod(ctx, tx, &st.Methods[i]); err != nil {
			return fmt.Errorf("failed to save method %q: %w", st.Methods[i].Name, err)
		}
	}

	for i := range st.Companies {
		c := &st.Companies[i]
		if err := insertCompany(ctx, tx, c, i); err != nil {
			return fmt.Errorf("failed to save company %q: %w", c.Name, err)
		}
		for pos := range c.History {
			if err := insertCommunication(ctx, tx, c.ID, pos, &c.History[pos]); err != nil {
				return fmt.Errorf("failed to save communication for %q: %w", c.Name, err)
			}
		}
	}

	for id, on := range st.Overrides {
		if !on {
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO highlight_overrides (company_id) VALUES (?)`, id.String()); err != nil {
			return fmt.Errorf("failed to save override: %w", err)
		}
	}

	if err := markInitialized(ctx, tx); err != nil {
		return fmt.Errorf("failed to mark initialized: %w", err)
	}

	return tx.Commit()
}
