package note

import (
	"context"
	"fmt"
)

// Delete removes the note with the given id, or returns ErrNotFound
func (s *Store) Delete(ctx context.Context, id uint64) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
