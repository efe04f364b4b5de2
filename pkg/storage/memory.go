package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used in tests and single-node
// development setups. Change notifications are delivered synchronously.
type MemoryStore struct {
	mu          sync.RWMutex
	docs        map[string][]byte
	subscribers map[int]func(key string)
	nextSubID   int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:        make(map[string][]byte),
		subscribers: make(map[int]func(key string)),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.docs[key] = stored
	m.mu.Unlock()

	m.notify(key)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.docs, key)
	m.mu.Unlock()

	m.notify(key)
	return nil
}

func (m *MemoryStore) Subscribe(handler func(key string)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = handler
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// notify runs outside the write lock so handlers may call back into the store
func (m *MemoryStore) notify(key string) {
	m.mu.RLock()
	handlers := make([]func(string), 0, len(m.subscribers))
	for _, h := range m.subscribers {
		handlers = append(handlers, h)
	}
	m.mu.RUnlock()

	for _, h := range handlers {
		h(key)
	}
}
