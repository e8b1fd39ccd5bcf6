// Package sessiontest provides an in-memory session store for tests.
package sessiontest

import "sync"

// MemoryStore is a session store backed by a map.
type MemoryStore struct {
	mu     sync.Mutex
	values map[interface{}]interface{}
	saves  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[interface{}]interface{}{}}
}

func (m *MemoryStore) Get(key interface{}) interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *MemoryStore) Set(key interface{}, val interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = val
}

func (m *MemoryStore) Delete(key interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

func (m *MemoryStore) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
