package datamanager

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

type Cloner[T any] interface {
	Clone() T
}

type DocumentOptions[T any] struct {
	Key        string
	Seed       func() T
	Migrations []Migration
	Now        func() time.Time
}

// Document is a singleton value persisted under one key (about page, legal
// pages, contact info).
type Document[T Cloner[T]] struct {
	mu     sync.RWMutex
	value  T
	status LoadStatus
	ids    *IDGenerator
	store  *persister
}

func NewDocument[T Cloner[T]](ctx context.Context, store kvstore.Store, log logger.Logger, opts DocumentOptions[T]) (*Document[T], error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Migrations == nil {
		opts.Migrations = []Migration{SnakeCaseKeys}
	}
	d := &Document[T]{
		ids: NewIDGenerator(opts.Now),
		store: &persister{
			store:      store,
			key:        opts.Key,
			migrations: opts.Migrations,
			now:        opts.Now,
			logger:     log,
		},
	}

	status, err := d.store.hydrate(ctx, func(data json.RawMessage) error {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		d.value = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.status = status

	if status != LoadExisting {
		var zero T
		d.value = zero
		if opts.Seed != nil {
			d.value = opts.Seed()
		}
		if err := d.store.save(ctx, d.value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Document[T]) Key() string { return d.store.key }

func (d *Document[T]) Status() LoadStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Get returns a deep copy of the current value.
func (d *Document[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value.Clone()
}

// NewID is for nested items (team members, sections, ...) that need their
// own identifiers.
func (d *Document[T]) NewID() string {
	return d.ids.Next()
}

// Update runs mutate on a copy and stores it. If mutate returns an error the
// document is left untouched and that error is returned.
func (d *Document[T]) Update(ctx context.Context, mutate func(*T) error) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	next := d.value.Clone()
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if err := d.store.save(ctx, next); err != nil {
		return zero, err
	}
	d.value = next
	return next.Clone(), nil
}

func (d *Document[T]) Replace(ctx context.Context, value T) error {
	_, err := d.Update(ctx, func(v *T) error {
		*v = value.Clone()
		return nil
	})
	return err
}
