package store

import (
	"context"
	"errors"

	"github.com/indranet/coresched/types"
)

// Sentinel errors returned by state stores.
var (
	// ErrNotFound is returned by Load when no snapshot has been saved yet.
	ErrNotFound = errors.New("no scheduler state snapshot found")

	// ErrConnRequired is returned when a NATS store is created without a
	// connection.
	ErrConnRequired = errors.New("NATS connection is required")
)

// StateStore persists scheduler state snapshots with read-whole/write-whole
// semantics.
//
// Implementations must return a state value the caller owns outright:
// mutating a loaded state must never affect the stored snapshot until the
// next Save.
type StateStore interface {
	// Load returns the most recently saved state. Returns ErrNotFound if
	// nothing has been saved.
	Load(ctx context.Context) (*types.SchedulerState, error)

	// Save replaces the stored snapshot with state.
	Save(ctx context.Context, state *types.SchedulerState) error
}
