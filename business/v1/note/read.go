package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/notekeeper/persistence/v1/note"
)

// ListActive returns the notes of owner that are neither archived nor trashed
func (c *Coordinator) ListActive(ctx context.Context, owner uint64) ([]Note, error) {
	return c.list(ctx, owner, activeView)
}

// ListArchived returns the archived notes of owner that are not trashed
func (c *Coordinator) ListArchived(ctx context.Context, owner uint64) ([]Note, error) {
	return c.list(ctx, owner, archivedView)
}

// ListTrashed returns the trashed notes of owner
func (c *Coordinator) ListTrashed(ctx context.Context, owner uint64) ([]Note, error) {
	return c.list(ctx, owner, trashedView)
}

// Get returns a single note of owner, ErrNotFound when it is missing or not owned by owner
func (c *Coordinator) Get(ctx context.Context, owner, id uint64) (Note, error) {
	key := keyOf(owner, id)

	var cached Note
	if c.fetch(ctx, key, &cached) {
		return cached, nil
	}

	n, err := c.find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if n.OwnerId != owner {
		return Note{}, ErrNotFound
	}

	c.put(ctx, key, n)
	return n, nil
}

func (c *Coordinator) list(ctx context.Context, owner uint64, v view) ([]Note, error) {
	key := v.key(owner)

	var cached []Note
	if c.fetch(ctx, key, &cached) {
		return cached, nil
	}

	notes, err := c.load(ctx, owner, v)
	if err != nil {
		return nil, err
	}

	c.put(ctx, key, notes)
	return notes, nil
}

func (c *Coordinator) load(ctx context.Context, owner uint64, v view) ([]Note, error) {
	found, err := c.store.FindByOwner(ctx, owner, v.filter())
	if err != nil {
		return nil, fmt.Errorf("find %s notes of %d: %w", v, owner, err)
	}
	notes := make([]Note, 0, len(found))
	for _, f := range found {
		notes = append(notes, Note(f))
	}
	return notes, nil
}

func (c *Coordinator) find(ctx context.Context, id uint64) (Note, error) {
	found, err := c.store.FindByID(ctx, id)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("find note %d: %w", id, err)
	default:
		return Note(found), nil
	}
}

// owned loads a note for a mutation by owner
func (c *Coordinator) owned(ctx context.Context, owner, id uint64) (Note, error) {
	n, err := c.find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if n.OwnerId != owner {
		return Note{}, ErrPermissionDenied
	}
	return n, nil
}
