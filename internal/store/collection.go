// Package store holds the in-memory entity collections.
//
// Collections are copy-on-write: every mutation installs a new slice, so a
// snapshot returned by All is never modified afterwards and can be read
// without holding any lock.
package store

import (
	"fmt"
	"sync"

	"github.com/starford/tubetrack/internal/apperr"
)

// Collection is an ordered list of records keyed by a numeric id.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
	id     func(T) int64
	setID  func(*T, int64)
}

// New creates a collection seeded with seed. id reads a record's identifier
// and setID assigns one.
func New[T any](id func(T) int64, setID func(*T, int64), seed []T) *Collection[T] {
	c := &Collection[T]{id: id, setID: setID, nextID: 1}
	c.Reset(seed)
	return c
}

// Reset replaces the contents with seed. Records without an id get a fresh
// one. The id sequence never moves backwards, so ids issued before the reset
// are not handed out again.
func (c *Collection[T]) Reset(seed []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(seed))
	copy(items, seed)
	for i := range items {
		if id := c.id(items[i]); id >= c.nextID {
			c.nextID = id + 1
		}
	}
	for i := range items {
		if c.id(items[i]) <= 0 {
			c.setID(&items[i], c.nextID)
			c.nextID++
		}
	}
	c.items = items
}

// All returns the current snapshot. Callers must not modify it.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, fmt.Errorf("store: id %d: %w", id, apperr.ErrNotFound)
}

// Create appends v under a freshly issued id and returns the stored record.
func (c *Collection[T]) Create(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setID(&v, c.nextID)
	c.nextID++

	items := make([]T, len(c.items), len(c.items)+1)
	copy(items, c.items)
	c.items = append(items, v)
	return v
}

// Delete removes the record with the given id and returns it.
func (c *Collection[T]) Delete(id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("store: id %d: %w", id, apperr.ErrNotFound)
	}
	removed := c.items[i]
	items := make([]T, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	c.items = append(items, c.items[i+1:]...)
	return removed, nil
}

// Update replaces the record with the given id by fn's result. fn receives a
// copy; if it returns an error the collection is left unchanged.
func (c *Collection[T]) Update(id int64, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("store: id %d: %w", id, apperr.ErrNotFound)
	}
	next, err := fn(c.items[i])
	if err != nil {
		return zero, err
	}
	c.setID(&next, id)

	items := make([]T, len(c.items))
	copy(items, c.items)
	items[i] = next
	c.items = items
	return next, nil
}

func (c *Collection[T]) indexOf(id int64) int {
	for i, v := range c.items {
		if c.id(v) == id {
			return i
		}
	}
	return -1
}
