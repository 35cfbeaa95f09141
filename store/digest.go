package store

import (
	"github.com/zeebo/xxh3"

	"github.com/indranet/coresched/types"
)

// Digest returns an xxh3 fingerprint of the state's canonical encoding.
//
// Every validator executing the same blocks must hold byte-identical
// scheduler state; comparing digests across nodes is a cheap way to detect
// divergence without shipping full snapshots.
//
// Parameters:
//   - state: Snapshot to fingerprint
//
// Returns:
//   - uint64: Fingerprint of the canonical encoding
//   - error: Encoding error
func Digest(state *types.SchedulerState) (uint64, error) {
	data, err := Marshal(state)
	if err != nil {
		return 0, err
	}

	return xxh3.Hash(data), nil
}
