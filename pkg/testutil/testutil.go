// Package testutil holds deterministic stand-ins for the clock, the id source
// and the storage provider.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/recall/pkg/store"
)

// StubClock returns a fixed time. Safe for concurrent use.
type StubClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewStubClock creates a StubClock set to the given time.
func NewStubClock(t time.Time) *StubClock {
	return &StubClock{now: t}
}

// FixedClock returns a StubClock set to Thursday 2026-10-15 14:30 UTC.
func FixedClock() *StubClock {
	return NewStubClock(time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC))
}

func (c *StubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *StubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// StubIDGenerator returns sequential IDs: "id-1", "id-2", etc.
type StubIDGenerator struct {
	mu      sync.Mutex
	counter int
}

func NewStubIDGenerator() *StubIDGenerator {
	return &StubIDGenerator{}
}

func (g *StubIDGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("id-%d", g.counter)
}

// ErrUnavailable is returned by FailingStore.
var ErrUnavailable = errors.New("testutil: storage unavailable")

// FailingStore is a store.Persistence whose reads and writes fail. Writes are
// counted so tests can see they were attempted.
type FailingStore struct {
	mu     sync.Mutex
	writes int
}

var _ store.Persistence = (*FailingStore)(nil)

func (f *FailingStore) Read(string) ([]byte, error) { return nil, ErrUnavailable }

func (f *FailingStore) Write(string, []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return ErrUnavailable
}

func (f *FailingStore) Erase(string) error { return ErrUnavailable }

func (f *FailingStore) Keys(context.Context) ([]string, error) { return nil, ErrUnavailable }

func (f *FailingStore) Describe() string { return "failing" }

func (f *FailingStore) Close() error { return nil }

// Writes returns how many writes were attempted.
func (f *FailingStore) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
