package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/notekeeper/persistence/v1/note"
	"github.com/ribgsilva/notekeeper/platform/validate"
)

// Create stores a new note of owner and adds it to the cached lists it belongs to
func (c *Coordinator) Create(ctx context.Context, owner uint64, newN NewNote) (Note, error) {
	if err := validate.Check(newN); err != nil {
		return Note{}, err
	}

	created, err := c.store.Insert(ctx, note.NewNote{
		OwnerId:     owner,
		Title:       newN.Title,
		Description: newN.Description,
		Color:       newN.Color,
		Image:       newN.Image,
		Reminder:    newN.Reminder,
		IsArchive:   newN.IsArchive,
		IsTrash:     newN.IsTrash,
	})
	if err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}

	n := Note(created)
	c.patchLists(ctx, n)
	return n, nil
}

// Update replaces every mutable field of a note
func (c *Coordinator) Update(ctx context.Context, owner, id uint64, upd UpdateNote) (Note, error) {
	if err := validate.Check(upd); err != nil {
		return Note{}, err
	}
	current, err := c.owned(ctx, owner, id)
	if err != nil {
		return Note{}, err
	}
	upd.apply(&current)
	return c.save(ctx, current)
}

// Patch changes only the fields set in p
func (c *Coordinator) Patch(ctx context.Context, owner, id uint64, p PatchNote) (Note, error) {
	if err := validate.Check(p); err != nil {
		return Note{}, err
	}
	current, err := c.owned(ctx, owner, id)
	if err != nil {
		return Note{}, err
	}
	p.apply(&current)
	return c.save(ctx, current)
}

// Delete removes a note, its cached copy and its cached list entries
func (c *Coordinator) Delete(ctx context.Context, owner, id uint64) error {
	if _, err := c.owned(ctx, owner, id); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, id); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	c.drop(ctx, keyOf(owner, id), archivedView.key(owner), trashedView.key(owner))
	c.refreshActive(ctx, owner)
	return nil
}

// ToggleArchive flips the archive flag of a note
func (c *Coordinator) ToggleArchive(ctx context.Context, owner, id uint64) (Note, error) {
	return c.toggle(ctx, owner, id, func(n *Note) { n.IsArchive = !n.IsArchive })
}

// ToggleTrash flips the trash flag of a note
func (c *Coordinator) ToggleTrash(ctx context.Context, owner, id uint64) (Note, error) {
	return c.toggle(ctx, owner, id, func(n *Note) { n.IsTrash = !n.IsTrash })
}

func (c *Coordinator) toggle(ctx context.Context, owner, id uint64, flip func(n *Note)) (Note, error) {
	current, err := c.owned(ctx, owner, id)
	if err != nil {
		return Note{}, err
	}
	flip(&current)

	n, err := c.update(ctx, current)
	if err != nil {
		return Note{}, err
	}

	c.put(ctx, keyOf(owner, id), n)
	c.patchLists(ctx, n)
	return n, nil
}

// save persists a structural change, refreshing the note entry and recomputing the active list
func (c *Coordinator) save(ctx context.Context, current Note) (Note, error) {
	n, err := c.update(ctx, current)
	if err != nil {
		return Note{}, err
	}

	c.put(ctx, keyOf(n.OwnerId, n.Id), n)
	c.refreshActive(ctx, n.OwnerId)
	c.drop(ctx, archivedView.key(n.OwnerId), trashedView.key(n.OwnerId))
	return n, nil
}

func (c *Coordinator) update(ctx context.Context, current Note) (Note, error) {
	updated, err := c.store.Update(ctx, note.Note(current))
	switch {
	case errors.Is(err, note.ErrNotFound):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("update note %d: %w", current.Id, err)
	default:
		return Note(updated), nil
	}
}

// refreshActive overwrites the active list of owner with a fresh store read,
// dropping the entry when the read fails so it cannot stay stale
func (c *Coordinator) refreshActive(ctx context.Context, owner uint64) {
	key := activeView.key(owner)
	notes, err := c.load(ctx, owner, activeView)
	if err != nil {
		c.log.Errorw("cache", "op", "refresh", "key", key, "ERROR", err)
		c.drop(ctx, key)
		return
	}
	c.put(ctx, key, notes)
}

// patchLists places n in every cached list of its owner, lists not in cache stay absent
func (c *Coordinator) patchLists(ctx context.Context, n Note) {
	for _, v := range views {
		key := v.key(n.OwnerId)
		var cached []Note
		if !c.fetch(ctx, key, &cached) {
			continue
		}
		c.overwrite(ctx, key, v.patch(cached, n))
	}
}
