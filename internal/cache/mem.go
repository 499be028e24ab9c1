package cache

import (
	"context"
	"sync"
)

type memStore struct {
	mu   sync.RWMutex
	byID map[string]string
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[string]string)}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	html, ok := m.byID[key]
	if !ok {
		return "", ErrNotFound
	}
	return html, nil
}

func (m *memStore) Put(ctx context.Context, key, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[key] = html
	return nil
}

func (m *memStore) Close() error { return nil }
