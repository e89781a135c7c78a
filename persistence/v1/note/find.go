package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// FindByID returns the note with the given id, or ErrNotFound
func (s *Store) FindByID(ctx context.Context, id uint64) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	n, err := scan(s.db.QueryRowContext(dbCtx, "SELECT "+columns+" FROM notes WHERE id = ?", id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return n, nil
	}
}

// FindByOwner returns the notes of owner matching f, ordered by id
func (s *Store) FindByOwner(ctx context.Context, owner uint64, f Filter) ([]Note, error) {
	var query strings.Builder
	query.WriteString("SELECT " + columns + " FROM notes WHERE owner_id = ?")
	args := []any{owner}
	if f.IsArchive != nil {
		query.WriteString(" AND is_archive = ?")
		args = append(args, flag(*f.IsArchive))
	}
	if f.IsTrash != nil {
		query.WriteString(" AND is_trash = ?")
		args = append(args, flag(*f.IsTrash))
	}
	query.WriteString(" ORDER BY id ASC")

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	rows, err := s.db.QueryContext(dbCtx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query find by owner stmt: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate find by owner rows: %w", err)
	}
	return notes, nil
}
