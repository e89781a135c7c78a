package note

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ribgsilva/notekeeper/persistence/v1/note"
)

var errStoreDown = errors.New("store down")

// memStore is an in memory Store counting the calls it receives
type memStore struct {
	mu    sync.Mutex
	notes map[uint64]note.Note
	next  uint64
	now   time.Time
	calls map[string]int
	fail  error
}

func newMemStore() *memStore {
	return &memStore{
		notes: make(map[uint64]note.Note),
		now:   time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		calls: make(map[string]int),
	}
}

func (m *memStore) count(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *memStore) FindByOwner(_ context.Context, owner uint64, f note.Filter) ([]note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["FindByOwner"]++
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]note.Note, 0)
	for _, n := range m.notes {
		if n.OwnerId != owner {
			continue
		}
		if f.IsArchive != nil && n.IsArchive != *f.IsArchive {
			continue
		}
		if f.IsTrash != nil && n.IsTrash != *f.IsTrash {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (m *memStore) FindByID(_ context.Context, id uint64) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["FindByID"]++
	if m.fail != nil {
		return note.Note{}, m.fail
	}
	n, ok := m.notes[id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	return n, nil
}

func (m *memStore) Insert(_ context.Context, newN note.NewNote) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Insert"]++
	if m.fail != nil {
		return note.Note{}, m.fail
	}
	m.next++
	n := note.Note{
		Id:          m.next,
		OwnerId:     newN.OwnerId,
		Title:       newN.Title,
		Description: newN.Description,
		Color:       newN.Color,
		Image:       newN.Image,
		Reminder:    newN.Reminder,
		IsArchive:   newN.IsArchive,
		IsTrash:     newN.IsTrash,
		UpdatedAt:   m.now,
		CreatedAt:   m.now,
	}
	m.notes[n.Id] = n
	return n, nil
}

func (m *memStore) Update(_ context.Context, n note.Note) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Update"]++
	if m.fail != nil {
		return note.Note{}, m.fail
	}
	current, ok := m.notes[n.Id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	n.OwnerId = current.OwnerId
	n.CreatedAt = current.CreatedAt
	n.UpdatedAt = m.now
	m.notes[n.Id] = n
	return n, nil
}

func (m *memStore) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Delete"]++
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.notes[id]; !ok {
		return note.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

// downCache fails every call, as an unreachable cache would
type downCache struct{}

var errCacheDown = errors.New("cache down")

func (downCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errCacheDown
}

func (downCache) Set(context.Context, string, string, time.Duration) error {
	return errCacheDown
}

func (downCache) Delete(context.Context, ...string) error {
	return errCacheDown
}

func newStoreNote(owner uint64, title string) note.NewNote {
	return note.NewNote{OwnerId: owner, Title: title}
}
