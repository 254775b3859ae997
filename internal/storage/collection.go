package storage

import (
	"context"
	"sync"
)

// Collection is an ordered in-memory list persisted as a whole under one key.
// Every successful mutation issues exactly one Save; the in-memory list only
// changes once that Save succeeded. Mutations are serialized by the lock.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	key   string
	store *Store
	idOf  func(T) string
}

// NewCollection hydrates the list from the store, falling back to defaults.
func NewCollection[T any](ctx context.Context, store *Store, key string, defaults []T, idOf func(T) string) *Collection[T] {
	items := Load(ctx, store, key, defaults)
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{
		items: items,
		key:   key,
		store: store,
		idOf:  idOf,
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// All returns a copy of the list in stored order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the items matching keep, preserving order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items)+1)
	next = append(next, item)
	next = append(next, c.items...)
	return c.commit(ctx, next)
}

func (c *Collection[T]) Append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, item)
	return c.commit(ctx, next)
}

// Update applies fn to every item with the given id and returns the first one.
// An unknown id is a no-op: nothing is saved and found is false.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T)) (updated T, found bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := append([]T(nil), c.items...)
	for i := range next {
		if c.idOf(next[i]) != id {
			continue
		}
		fn(&next[i])
		if !found {
			updated = next[i]
			found = true
		}
	}
	if !found {
		return updated, false, nil
	}
	if err := c.commit(ctx, next); err != nil {
		var zero T
		return zero, true, err
	}
	return updated, true, nil
}

// Delete removes every item with the given id. An unknown id is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.idOf(item) != id {
			next = append(next, item)
		}
	}
	if len(next) == len(c.items) {
		return false, nil
	}
	return true, c.commit(ctx, next)
}

// Replace overwrites the whole list.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(ctx, append([]T{}, items...))
}

func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	if err := Save(ctx, c.store, c.key, next); err != nil {
		return err
	}
	c.items = next
	return nil
}
