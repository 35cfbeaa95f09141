package types

import "slices"

// SchedulerState is the whole of the scheduler's chain state for one relay
// chain: availability cores, validator groups, the indrabase claim queue and
// index, the scheduled-assignment list and the session's rotation origin and
// config snapshot.
//
// The host storage layer treats it as a single value with read-whole /
// write-whole semantics; the scheduler mutates it in place between a Load
// and a Save. All collections are slices so that replaying the same blocks
// yields byte-identical state on every validator.
type SchedulerState struct {
	// ValidatorGroups holds one group per availability core. Values are
	// indices into the session's active validator list.
	ValidatorGroups [][]ValidatorIndex `json:"validatorGroups"`

	// AvailabilityCores has one entry per core. Cores [0, n_indracores)
	// are bound to indracores; the remainder multiplex indrabases.
	AvailabilityCores []CoreOccupancy `json:"availabilityCores"`

	// Queue is the pending indrabase claim queue.
	Queue ClaimQueue `json:"queue"`

	// ClaimIndex tracks which workloads have an outstanding claim, queued
	// or occupying a core.
	ClaimIndex ClaimIndex `json:"claimIndex"`

	// SessionStartBlock is the first block of the current session and the
	// origin for group rotation.
	SessionStartBlock BlockNumber `json:"sessionStartBlock"`

	// Scheduled is the list of free-but-about-to-be-occupied core
	// assignments, strictly sorted ascending by core index. It is not
	// valid across block boundaries.
	Scheduled []CoreAssignment `json:"scheduled"`

	// Config is the session's configuration snapshot.
	Config SessionConfig `json:"config"`
}

// NewState returns an empty scheduler state, as at genesis before the first
// session change.
func NewState() *SchedulerState {
	return &SchedulerState{}
}

// Clone returns a deep copy of the state. Mutating the copy never affects
// the original.
func (s *SchedulerState) Clone() *SchedulerState {
	clone := &SchedulerState{
		AvailabilityCores: slices.Clone(s.AvailabilityCores),
		ClaimIndex:        slices.Clone(s.ClaimIndex),
		SessionStartBlock: s.SessionStartBlock,
		Scheduled:         slices.Clone(s.Scheduled),
		Config:            s.Config,
	}

	if s.ValidatorGroups != nil {
		clone.ValidatorGroups = make([][]ValidatorIndex, len(s.ValidatorGroups))
		for i, group := range s.ValidatorGroups {
			clone.ValidatorGroups[i] = slices.Clone(group)
		}
	}

	clone.Queue = ClaimQueue{
		Entries:        slices.Clone(s.Queue.Entries),
		NextCoreOffset: s.Queue.NextCoreOffset,
	}

	return clone
}
