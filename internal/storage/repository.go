package storage

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("item not found")
)

// Repository is a per-visitor key-value store, the server-side counterpart of
// the browser's localStorage.
type Repository interface {
	// Available reports whether the backing store can be written right now.
	Available() bool
	Set(owner, key, value string) error
	Get(owner, key string) (string, error)
}

// InMemoryRepository is used for tests and when no database is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]map[string]string)}
}

func (r *InMemoryRepository) Available() bool { return r != nil }

func (r *InMemoryRepository) Set(owner, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bucket, ok := r.items[owner]
	if !ok {
		bucket = make(map[string]string)
		r.items[owner] = bucket
	}
	bucket[key] = value
	return nil
}

func (r *InMemoryRepository) Get(owner, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[owner][key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}
