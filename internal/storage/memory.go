// ABOUTME: In-memory Backend for tests and throwaway sessions.
// ABOUTME: Values are copied on the way in and out so callers cannot alias stored bytes.
package storage

import (
	"sort"
	"sync"
)

// MemoryStore keeps every value in a map. Nothing survives Close.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Backend = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory backend.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
