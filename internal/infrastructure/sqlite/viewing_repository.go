package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/valentine/internal/viewings/domain"
)

type viewingRepository struct {
	db *sql.DB
}

var _ domain.Repository = (*viewingRepository)(nil)

func (r *viewingRepository) Save(v *domain.Viewing) error {
	if v.ID() != 0 {
		return domain.ErrAlreadySaved
	}
	row := toRow(v)
	res, err := r.db.Exec(
		`INSERT INTO viewings (guid, variant, furthest, petals, clicks, completed, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.GUID, row.Variant, row.Furthest, row.Petals, row.Clicks, row.Completed, row.StartedAt, row.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting viewing: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading viewing id: %w", err)
	}
	v.SetID(id)
	return nil
}

func (r *viewingRepository) FindByGUID(guid string) (*domain.Viewing, error) {
	var row viewingRow
	err := r.db.QueryRow(`SELECT `+viewingColumns+` FROM viewings WHERE guid = ?`, guid).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ViewingNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("finding viewing: %w", err)
	}
	return row.toDomain(), nil
}

// List orders by start time, newest first, with id breaking ties.
func (r *viewingRepository) List(filter domain.ListFilter) ([]*domain.Viewing, error) {
	query := `SELECT ` + viewingColumns + ` FROM viewings WHERE 1 = 1`
	var args []any
	if filter.Variant != "" {
		query += ` AND variant = ?`
		args = append(args, filter.Variant)
	}
	if filter.CompletedOnly {
		query += ` AND completed = 1`
	}
	query += ` ORDER BY started_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing viewings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*domain.Viewing
	for rows.Next() {
		var row viewingRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scanning viewing: %w", err)
		}
		out = append(out, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating viewings: %w", err)
	}
	return out, nil
}

// Close is a no-op; DB owns the connection.
func (r *viewingRepository) Close() error {
	return nil
}
