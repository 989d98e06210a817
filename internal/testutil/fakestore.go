// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"tdo/internal/task"
)

// FakeStore is an in-memory implementation of store.Store for testing.
// It hands out copies, so command-level mutations only become visible
// through Save, mirroring the load-mutate-save contract.
type FakeStore struct {
	mu   sync.Mutex
	list task.List

	// Saves counts successful Save calls.
	Saves int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeStore creates a FakeStore seeded with the given tasks.
func NewFakeStore(tasks ...task.Task) *FakeStore {
	return &FakeStore{list: task.List(tasks)}
}

// Load implements store.Store.
func (f *FakeStore) Load(ctx context.Context) (task.List, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(task.List, len(f.list))
	copy(out, f.list)
	return out, nil
}

// Save implements store.Store.
func (f *FakeStore) Save(ctx context.Context, list task.List) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = make(task.List, len(list))
	copy(f.list, list)
	f.Saves++
	return nil
}

// Tasks returns the currently persisted list.
func (f *FakeStore) Tasks() task.List {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(task.List, len(f.list))
	copy(out, f.list)
	return out
}
