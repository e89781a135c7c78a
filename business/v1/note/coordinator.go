// Package note serves notes from a per owner cache in front of the store.
//
// Reads are read-through: a miss loads from the store and populates the cache
// with the configured TTL. Writes go to the store first and touch the cache
// only after the store confirmed them. Structural changes (create aside)
// recompute the active list from the store, while flag toggles patch the
// cached lists in place. The cache is an optimization: any cache failure is
// logged and handled as a miss.
package note

import (
	"context"
	"time"

	"github.com/ribgsilva/notekeeper/persistence/v1/note"
	"go.uber.org/zap"
)

// DefaultTTL is used when no positive TTL is configured
const DefaultTTL = 300 * time.Second

// keepTTL asks the cache to replace a live entry retaining its remaining expiry
const keepTTL time.Duration = -1

// Store is the source of truth for notes
type Store interface {
	FindByOwner(ctx context.Context, owner uint64, f note.Filter) ([]note.Note, error)
	FindByID(ctx context.Context, id uint64) (note.Note, error)
	Insert(ctx context.Context, n note.NewNote) (note.Note, error)
	Update(ctx context.Context, n note.Note) (note.Note, error)
	Delete(ctx context.Context, id uint64) error
}

// Cache is a string key value store with per key expiry.
// Set with a negative ttl only replaces a key that still exists, keeping its expiry.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Coordinator is safe for concurrent use as long as its Store and Cache are
type Coordinator struct {
	log   *zap.SugaredLogger
	store Store
	cache Cache
	ttl   time.Duration
}

func NewCoordinator(log *zap.SugaredLogger, store Store, cache Cache, ttl time.Duration) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Coordinator{
		log:   log,
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}
