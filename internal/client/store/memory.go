package store

import (
	"context"
	"maps"
	"sync"
)

// Memory is an in-process TxStore. Tests use it in place of SQLite.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

var _ TxStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.data)
	return nil
}

// WithTx restores the previous contents when fn fails.
func (m *Memory) WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.mu.Lock()
	snapshot := maps.Clone(m.data)
	m.mu.Unlock()

	if err := fn(ctx, m); err != nil {
		m.mu.Lock()
		m.data = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}
