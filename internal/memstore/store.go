// Package memstore provides a generic thread-safe in-memory store used by the
// memory repositories. It keeps insertion order and can enforce one unique
// secondary key, which is how the memory backends honour title uniqueness.
package memstore

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var (
	// ErrNotFound is returned when the requested key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a primary or unique key is already taken.
	ErrDuplicate = errors.New("duplicate key")
)

// Store is a generic thread-safe in-memory key-value store.
type Store[V any] struct {
	mu      sync.RWMutex
	data    map[string]V
	order   []string
	keyFunc func(V) string

	uniqueFunc func(V) string
	unique     map[string]string // unique key -> primary key
}

// Option configures a Store.
type Option[V any] func(*Store[V])

// Unique makes fn's result a unique secondary key. Empty results are not indexed.
func Unique[V any](fn func(V) string) Option[V] {
	return func(s *Store[V]) {
		s.uniqueFunc = fn
		s.unique = make(map[string]string)
	}
}

// New creates a Store with a primary key extractor.
func New[V any](keyFunc func(V) string, opts ...Option[V]) *Store[V] {
	s := &Store[V]{
		data:    make(map[string]V),
		keyFunc: keyFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert adds v. It fails with ErrDuplicate if the primary or unique key is taken.
func (s *Store[V]) Insert(_ context.Context, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.keyFunc(v)
	if _, ok := s.data[key]; ok {
		return ErrDuplicate
	}
	if err := s.claim(key, v); err != nil {
		return err
	}
	s.data[key] = v
	s.order = append(s.order, key)
	return nil
}

// Replace overwrites an existing value, keeping its position.
func (s *Store[V]) Replace(_ context.Context, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.keyFunc(v)
	old, ok := s.data[key]
	if !ok {
		return ErrNotFound
	}
	if s.uniqueFunc != nil {
		if err := s.claim(key, v); err != nil {
			return err
		}
		if prev, next := s.uniqueFunc(old), s.uniqueFunc(v); prev != next {
			delete(s.unique, prev)
		}
	}
	s.data[key] = v
	return nil
}

// claim reserves v's unique key for primary key. Callers hold the write lock.
func (s *Store[V]) claim(key string, v V) error {
	if s.uniqueFunc == nil {
		return nil
	}
	u := s.uniqueFunc(v)
	if u == "" {
		return nil
	}
	if owner, ok := s.unique[u]; ok && owner != key {
		return ErrDuplicate
	}
	s.unique[u] = key
	return nil
}

// Get returns the value for key, or ErrNotFound.
func (s *Store[V]) Get(_ context.Context, key string) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	return v, nil
}

// GetUnique returns the value whose unique key equals u.
func (s *Store[V]) GetUnique(_ context.Context, u string) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero V
	if s.uniqueFunc == nil {
		return zero, ErrNotFound
	}
	key, ok := s.unique[u]
	if !ok {
		return zero, ErrNotFound
	}
	return s.data[key], nil
}

// FindOne returns the first value, in insertion order, matching pred.
func (s *Store[V]) FindOne(_ context.Context, pred func(V) bool) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, key := range s.order {
		if v := s.data[key]; pred(v) {
			return v, nil
		}
	}
	var zero V
	return zero, ErrNotFound
}

// All returns every value in insertion order.
func (s *Store[V]) All(_ context.Context) ([]V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]V, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.data[key])
	}
	return out, nil
}

// Delete removes the value for key. Returns ErrNotFound if absent.
func (s *Store[V]) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return ErrNotFound
	}
	if s.uniqueFunc != nil {
		delete(s.unique, s.uniqueFunc(v))
	}
	delete(s.data, key)
	if i := slices.Index(s.order, key); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return nil
}

// Len reports the number of stored values.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
