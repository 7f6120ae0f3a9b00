package store

import (
	"context"
	"sync"
)

// Medium is the backing persistence for planner records. All operations
// are total: an unavailable medium reads absent and writes nothing, it
// never raises. The bool result of Set/Delete reports whether the write
// actually happened.
type Medium interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) bool
	Delete(ctx context.Context, key string) bool
}

// MemoryMedium is an in-process Medium for tests and dev runs.
type MemoryMedium struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string]string)}
}

func (m *MemoryMedium) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryMedium) Set(_ context.Context, key, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return true
}

func (m *MemoryMedium) Delete(_ context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return true
}
