package note

import (
	"context"
	"fmt"
	"strings"
)

// Insert stores a new note and returns it as persisted.
// A nil reminder leaves the column out so it keeps its NULL default.
func (s *Store) Insert(ctx context.Context, newN NewNote) (Note, error) {
	n := s.now()

	cols := []string{"owner_id", "title", "description", "color", "image", "is_archive", "is_trash"}
	args := []any{newN.OwnerId, newN.Title, newN.Description, newN.Color, newN.Image, flag(newN.IsArchive), flag(newN.IsTrash)}
	if newN.Reminder != nil {
		cols = append(cols, "reminder")
		args = append(args, newN.Reminder.UTC())
	}
	cols = append(cols, "updated_at", "created_at")
	args = append(args, n, n)

	query := fmt.Sprintf("INSERT INTO notes (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()
	res, err := s.db.ExecContext(dbCtx, query, args...)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return s.FindByID(ctx, uint64(id))
}
