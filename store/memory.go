package store

import (
	"context"
	"sync"

	"github.com/indranet/coresched/types"
)

// Memory implements StateStore with an in-process snapshot.
//
// Snapshots are held in encoded form, so Load always returns an independent
// copy, with the same isolation a real storage backend gives.
type Memory struct {
	mu       sync.RWMutex
	snapshot []byte
}

var _ StateStore = (*Memory)(nil)

// NewMemory creates an empty in-memory state store.
//
// Returns:
//   - *Memory: Initialized store; Load returns ErrNotFound until the first
//     Save
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the most recently saved state.
func (m *Memory) Load(_ context.Context) (*types.SchedulerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.snapshot == nil {
		return nil, ErrNotFound
	}

	return Unmarshal(m.snapshot)
}

// Save replaces the stored snapshot with state.
func (m *Memory) Save(_ context.Context, state *types.SchedulerState) error {
	data, err := Marshal(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.snapshot = data
	m.mu.Unlock()

	return nil
}
