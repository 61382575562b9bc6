// ABOUTME: Company row mapping for the snapshot repository
// ABOUTME: Encodes contact lists as JSON columns and keeps insertion order
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sankar2i/calendar/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	return string(b), err
}

func decodeList(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

func insertCompany(ctx context.Context, q querier, c *models.Company, position int) error {
	emails, err := encodeList(c.Emails)
	if err != nil {
		return fmt.Errorf("failed to encode emails: %w", err)
	}
	phones, err := encodeList(c.Phones)
	if err != nil {
		return fmt.Errorf("failed to encode phones: %w", err)
	}

	var linkedin sql.NullString
	if c.LinkedIn != nil {
		linkedin = sql.NullString{String: *c.LinkedIn, Valid: true}
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO companies (
			id, position, name, location, linkedin, emails, phones,
			comments, periodicity, next_communication_type, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID.String(), position, c.Name, c.Location, linkedin, emails, phones,
		c.Comments, c.Periodicity, c.NextCommunicationType, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	return err
}

// listCompanies returns companies in insertion order without history.
func listCompanies(ctx context.Context, q querier) ([]models.Company, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, location, linkedin, emails, phones,
		       comments, periodicity, next_communication_type, created_at, updated_at
		FROM companies
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var (
			c        models.Company
			linkedin sql.NullString
			emails   string
			phones   string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &linkedin, &emails, &phones,
			&c.Comments, &c.Periodicity, &c.NextCommunicationType, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if linkedin.Valid {
			v := linkedin.String
			c.LinkedIn = &v
		}
		if c.Emails, err = decodeList(emails); err != nil {
			return nil, fmt.Errorf("company %s emails: %w", c.ID, err)
		}
		if c.Phones, err = decodeList(phones); err != nil {
			return nil, fmt.Errorf("company %s phones: %w", c.ID, err)
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

func listOverrides(ctx context.Context, q querier) (map[uuid.UUID]bool, error) {
	rows, err := q.QueryContext(ctx, `SELECT company_id FROM highlight_overrides`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := map[uuid.UUID]bool{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		overrides[id] = true
	}
	return overrides, rows.Err()
}
