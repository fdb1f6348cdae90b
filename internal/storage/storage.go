// Package storage provides the keyed persistence boundary for the
// application record, account data, auth flags, and language preference.
// The concrete backend is an implementation detail; the rest of the system
// only sees opaque values under fixed keys.
package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a key has no stored value. Callers treat it
// as "no saved record" and fall back to defaults.
var ErrNotFound = errors.New("storage: key not found")

// KV is the capability the application and auth components require.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// MemoryStore is an in-memory KV used for tests and ephemeral sessions.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
