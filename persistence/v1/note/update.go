package note

import (
	"context"
	"fmt"
)

// Update overwrites every mutable column of n, the owner is never changed.
// A missing row surfaces as ErrNotFound from the read back.
func (s *Store) Update(ctx context.Context, n Note) (Note, error) {
	args := []any{s.now()}
	reminder := "NULL"
	if n.Reminder != nil {
		reminder = "?"
		args = append(args, n.Reminder.UTC())
	}
	args = append(args, n.Title, n.Description, n.Color, n.Image, flag(n.IsArchive), flag(n.IsTrash), n.Id)

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	query := "UPDATE notes SET updated_at = ?, reminder = " + reminder + ", title = ?, description = ?, color = ?, image = ?, is_archive = ?, is_trash = ? WHERE id = ?"
	if _, err := s.db.ExecContext(dbCtx, query, args...); err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	return s.FindByID(ctx, n.Id)
}
