package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is a Persistence that lives only as long as the process.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory Persistence.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), val...)
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) Describe() string { return "memory" }

func (m *Memory) Close() error { return nil }

// Nop stands in for unavailable storage: nothing is ever found and writes are
// dropped.
type Nop struct{}

func (Nop) Read(string) ([]byte, error)            { return nil, ErrNotFound }
func (Nop) Write(string, []byte) error             { return nil }
func (Nop) Erase(string) error                     { return nil }
func (Nop) Keys(context.Context) ([]string, error) { return nil, nil }
func (Nop) Describe() string                       { return "unavailable" }
func (Nop) Close() error                           { return nil }
