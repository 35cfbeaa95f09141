package registry

import (
	"slices"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/indranet/coresched/types"
)

// Static implements a workload registry with an explicitly managed set of
// workloads.
//
// Liveness checks are lock-free since they are the hot path: downstream
// collation and RPC logic may probe IsLiveIndrabase concurrently with the
// host applying registration changes at a session boundary. The indracore
// list keeps its own mutex because its ordering is part of the registry
// contract and cannot live in a map.
type Static struct {
	mu         sync.RWMutex
	indracores []types.IndraID

	indrabases *xsync.Map[types.IndraID, struct{}]
}

var _ types.WorkloadRegistry = (*Static)(nil)

// NewStatic creates a registry pre-populated with the given workloads.
//
// Parameters:
//   - indracores: Permanently registered chains, in canonical order (core i
//     binds to the i'th entry)
//   - indrabases: Registered time-multiplexed workloads
//
// Returns:
//   - *Static: Initialized registry
//
// Example:
//
//	reg := registry.NewStatic(
//	    []types.IndraID{1, 2},
//	    []types.IndraID{10, 11, 12},
//	)
//	sched, err := coresched.New(reg)
func NewStatic(indracores, indrabases []types.IndraID) *Static {
	s := &Static{
		indracores: slices.Clone(indracores),
		indrabases: xsync.NewMap[types.IndraID, struct{}](),
	}
	for _, id := range indrabases {
		s.indrabases.Store(id, struct{}{})
	}

	return s
}

// IsLiveIndrabase reports whether id is a registered indrabase.
func (s *Static) IsLiveIndrabase(id types.IndraID) bool {
	_, ok := s.indrabases.Load(id)

	return ok
}

// LiveIndracoreIDs returns a copy of the registered indracores in canonical
// order.
func (s *Static) LiveIndracoreIDs() []types.IndraID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.indracores)
}

// SetIndracores replaces the indracore list.
//
// Must only be applied at session boundaries; the scheduler assumes core
// bindings are stable within a session.
func (s *Static) SetIndracores(indracores []types.IndraID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.indracores = slices.Clone(indracores)
}

// RegisterIndrabase adds an indrabase to the live set.
func (s *Static) RegisterIndrabase(id types.IndraID) {
	s.indrabases.Store(id, struct{}{})
}

// DeregisterIndrabase removes an indrabase from the live set.
func (s *Static) DeregisterIndrabase(id types.IndraID) {
	s.indrabases.Delete(id)
}
