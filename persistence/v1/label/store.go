package label

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Store reads and writes labels on a sql database
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

func NewStore(db *sql.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

func (s *Store) FindByID(ctx context.Context, id uint64) (Label, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var l Label
	err := s.db.QueryRowContext(dbCtx, "SELECT id, owner_id, name, updated_at, created_at FROM labels WHERE id = ?", id).
		Scan(&l.Id, &l.OwnerId, &l.Name, &l.UpdatedAt, &l.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Label{}, ErrNotFound
	case err != nil:
		return Label{}, fmt.Errorf("failed to query find label: %w", err)
	default:
		return l, nil
	}
}

func (s *Store) FindByOwner(ctx context.Context, owner uint64) ([]Label, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx, "SELECT id, owner_id, name, updated_at, created_at FROM labels WHERE owner_id = ? ORDER BY id ASC", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels by owner: %w", err)
	}
	defer rows.Close()

	labels := make([]Label, 0)
	for rows.Next() {
		var l Label
		if err := rows.Scan(&l.Id, &l.OwnerId, &l.Name, &l.UpdatedAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

func (s *Store) Insert(ctx context.Context, newL NewLabel) (Label, error) {
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx, "INSERT INTO labels (owner_id, name, updated_at, created_at) VALUES (?, ?, ?, ?)", newL.OwnerId, newL.Name, n, n)
	if err != nil {
		return Label{}, fmt.Errorf("failed to exec insert label: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Label{}, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return s.FindByID(ctx, uint64(id))
}

func (s *Store) Update(ctx context.Context, l Label) (Label, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	if _, err := s.db.ExecContext(dbCtx, "UPDATE labels SET updated_at = ?, name = ? WHERE id = ?", time.Now().UTC(), l.Name, l.Id); err != nil {
		return Label{}, fmt.Errorf("failed to exec update label: %w", err)
	}
	return s.FindByID(ctx, l.Id)
}

func (s *Store) Delete(ctx context.Context, id uint64) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx, "DELETE FROM labels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to exec delete label: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
