package store

import "sync"

// Value is a single mutable record, such as the user profile.
type Value[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewValue creates a Value holding v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current record.
func (s *Value[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v
}

// Set replaces the record.
func (s *Value[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

// Update replaces the record by fn's result unless fn fails.
func (s *Value[T]) Update(fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.v)
	if err != nil {
		var zero T
		return zero, err
	}
	s.v = next
	return next, nil
}
