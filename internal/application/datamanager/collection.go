package datamanager

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// Record is implemented by every entity stored in a Collection. Clone must
// return a deep copy; WithID returns a copy carrying the given id.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	Clone() T
}

type CollectionOptions[T any] struct {
	Key        string
	Seed       func() []T
	Migrations []Migration
	// Append inserts new records at the end instead of the front.
	Append bool
	// Limit caps the collection length; the oldest records are dropped. 0 means no cap.
	Limit int
	Now   func() time.Time
}

// Collection is an ordered list of records persisted as one document.
type Collection[T Record[T]] struct {
	mu     sync.RWMutex
	items  []T
	status LoadStatus
	opts   CollectionOptions[T]
	ids    *IDGenerator
	store  *persister
}

// NewCollection loads the document stored under opts.Key, seeding it when
// the key is empty or unreadable. The only error is an unreachable store or
// a failure to write the seed.
func NewCollection[T Record[T]](ctx context.Context, store kvstore.Store, log logger.Logger, opts CollectionOptions[T]) (*Collection[T], error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Migrations == nil {
		opts.Migrations = []Migration{SnakeCaseKeys}
	}
	c := &Collection[T]{
		opts: opts,
		ids:  NewIDGenerator(opts.Now),
		store: &persister{
			store:      store,
			key:        opts.Key,
			migrations: opts.Migrations,
			now:        opts.Now,
			logger:     log,
		},
	}

	status, err := c.store.hydrate(ctx, func(data json.RawMessage) error {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		c.items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.status = status

	if status != LoadExisting {
		c.items = []T{}
		if opts.Seed != nil {
			c.items = opts.Seed()
		}
		if err := c.store.save(ctx, c.items); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Reload swaps the cached records for what the store holds now, for keys
// another process also writes. A missing or unreadable document keeps the
// cache as it is.
func (c *Collection[T]) Reload(ctx context.Context) error {
	var items []T
	status, err := c.store.hydrate(ctx, func(data json.RawMessage) error {
		return json.Unmarshal(data, &items)
	})
	if err != nil || status != LoadExisting {
		return err
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *Collection[T]) Key() string { return c.opts.Key }

func (c *Collection[T]) Status() LoadStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a deep copy; callers can mutate it freely.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.items)
}

func (c *Collection[T]) GetByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Filter returns copies of the records matching keep, in collection order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Add assigns a fresh id to item, stores it and returns the stored copy.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.ids.Next()
	for c.indexOf(id) >= 0 {
		id = c.ids.Next()
	}
	rec := item.WithID(id).Clone()

	next := make([]T, 0, len(c.items)+1)
	if c.opts.Append {
		next = append(append(next, c.items...), rec)
	} else {
		next = append(append(next, rec), c.items...)
	}
	if c.opts.Limit > 0 && len(next) > c.opts.Limit {
		if c.opts.Append {
			next = next[len(next)-c.opts.Limit:]
		} else {
			next = next[:c.opts.Limit]
		}
	}

	if err := c.commit(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	return rec.Clone(), nil
}

// Update applies mutate to a copy of the record and stores the result. The
// bool is false when no record has the id; the store is not touched then.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}

	updated := c.items[i].Clone()
	mutate(&updated)
	// the id is not patchable
	updated = updated.WithID(id)

	next := cloneShallow(c.items)
	next[i] = updated
	if err := c.commit(ctx, next); err != nil {
		return zero, true, err
	}
	return updated.Clone(), true, nil
}

// Delete reports whether a record was removed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := make([]T, 0, len(c.items)-1)
	next = append(append(next, c.items[:i]...), c.items[i+1:]...)
	if err := c.commit(ctx, next); err != nil {
		return true, err
	}
	return true, nil
}

// ReplaceAll swaps the whole collection, keeping the given ids.
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(ctx, cloneAll(items))
}

// commit persists next and only then makes it the in-memory state, so a
// failed save leaves the collection as it was.
func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	if err := c.store.save(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

func cloneAll[T Record[T]](in []T) []T {
	out := make([]T, len(in))
	for i, item := range in {
		out[i] = item.Clone()
	}
	return out
}

func cloneShallow[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
