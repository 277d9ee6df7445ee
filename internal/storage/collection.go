package storage

import (
	"context"
	"log/slog"
	"sync"

	"adminboard/internal/models"
	"adminboard/internal/observability"

	"github.com/jinzhu/copier"
)

// Collection is one cached slot of the store. The first access loads the
// backing file; afterwards the cached slice is returned without re-reading,
// so changes made to the file outside the process stay invisible until
// Invalidate is called. A failed load caches an empty slice as if it were
// legitimate data.
type Collection[T any] struct {
	name string
	path string
	log  *slog.Logger

	mu     sync.Mutex
	items  []T
	loaded bool
}

// NewCollection creates a cache slot for the collection file at path.
func NewCollection[T any](name, path string, log *slog.Logger) *Collection[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Collection[T]{name: name, path: path, log: log}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// All returns the current snapshot, loading it from disk on first access.
// The returned slice is shared with the cache: callers must treat it as
// read-only and go through Update for mutations.
func (c *Collection[T]) All(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Collection[T]) load(ctx context.Context) []T {
	if !c.loaded {
		c.items = ReadCollection[T](c.path, c.log)
		c.loaded = true
		observability.StoreLoads.WithLabelValues(c.name).Inc()
		c.log.InfoContext(ctx, "collection loaded",
			slog.String("collection", c.name),
			slog.Int("records", len(c.items)))
	}
	return c.items
}

// Invalidate clears the slot so the next access re-reads the backing file.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loaded = false
}

// Update applies fn to a deep copy of the cached collection, persists the
// result, and swaps it into the cache only after the write succeeded. A
// failed persist therefore never leaves unsaved changes visible in memory.
// Mutators are serialized per collection, so concurrent read-mutate-write
// sequences cannot lose updates. fn returning an error aborts the operation
// without touching disk or cache.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.load(ctx)
	clone := make([]T, 0, len(current))
	if err := copier.CopyWithOption(&clone, &current, copier.Option{DeepCopy: true}); err != nil {
		return models.NewInternalError(err)
	}

	next, err := fn(clone)
	if err != nil {
		return err
	}

	if err := WriteCollection(c.path, next); err != nil {
		observability.StorePersistFailures.WithLabelValues(c.name).Inc()
		c.log.ErrorContext(ctx, "failed to persist collection",
			slog.String("collection", c.name),
			slog.String("path", c.path),
			slog.String("error", err.Error()))
		return models.NewPersistenceError(c.name, err)
	}

	c.items = next
	return nil
}
