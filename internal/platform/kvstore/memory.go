package kvstore

import (
	"context"
	"sort"
	"sync"
)

// Memory keeps entries in process memory. It is the default backend for local
// runs and tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

var (
	_ Store   = (*Memory)(nil)
	_ Batcher = (*Memory)(nil)
)

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// NewMemoryFrom seeds the store with a copy of entries.
func NewMemoryFrom(entries map[string]string) *Memory {
	m := NewMemory()
	for k, v := range entries {
		m.entries[k] = v
	}
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if key == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()

	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()

	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	out := make([]string, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	m.mu.RUnlock()

	sort.Strings(out)
	return out, nil
}

func (m *Memory) Apply(ctx context.Context, ops ...Op) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOps(ops); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, op := range ops {
		if op.Delete {
			delete(m.entries, op.Key)
			continue
		}
		m.entries[op.Key] = op.Value
	}

	return nil
}
