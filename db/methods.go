// ABOUTME: Communication method row mapping
// ABOUTME: Methods are stored with their dense 1-based sequence
package db

import (
	"context"

	"github.com/Sankar2i/calendar/models"
)

func insertMethod(ctx context.Context, q querier, m *models.CommunicationMethod) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO communication_methods (id, name, description, sequence, mandatory)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID.String(), m.Name, m.Description, m.Sequence, m.Mandatory)
	return err
}

func listMethods(ctx context.Context, q querier) ([]models.CommunicationMethod, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, description, sequence, mandatory
		FROM communication_methods
		ORDER BY sequence
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []models.CommunicationMethod
	for rows.Next() {
		var m models.CommunicationMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Sequence, &m.Mandatory); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}
