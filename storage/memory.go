package storage

import (
	"context"
	"sync"
)

type memoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an in-memory Backend suitable for tests
func NewMemory() Backend {
	return &memoryBackend{data: map[string][]byte{}}
}

func (m *memoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (m *memoryBackend) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *memoryBackend) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
