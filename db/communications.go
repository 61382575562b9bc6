// ABOUTME: Communication history row mapping
// ABOUTME: Position 0 is the most recent entry for a company
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/Sankar2i/calendar/models"
)

func insertCommunication(ctx context.Context, q querier, companyID uuid.UUID, position int, e *models.Communication) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO communications (id, company_id, position, type, date, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID.String(), companyID.String(), position, e.Type, e.Date, e.Notes)
	return err
}

// listHistories groups every stored communication by company, most recent first.
func listHistories(ctx context.Context, q querier) (map[uuid.UUID][]models.Communication, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, company_id, type, date, notes
		FROM communications
		ORDER BY company_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := map[uuid.UUID][]models.Communication{}
	for rows.Next() {
		var (
			e         models.Communication
			idStr     string
			companyID uuid.UUID
		)
		if err := rows.Scan(&idStr, &companyID, &e.Type, &e.Date, &e.Notes); err != nil {
			return nil, err
		}
		if e.ID, err = ulid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("communication %q: %w", idStr, err)
		}
		histories[companyID] = append(histories[companyID], e)
	}
	return histories, rows.Err()
}
