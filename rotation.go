package coresched

import (
	"slices"

	"github.com/indranet/coresched/types"
)

// GroupForCore returns the validator group checking the given core as of
// block number at. It returns false when the core is out of range or when
// at is before the session start, since rotation is undefined across a
// session boundary.
//
// The mapping walks forward one group per rotation period, wrapping around
// the group count, so every group checks every core over time.
func (s *Scheduler) GroupForCore(core types.CoreIndex, at types.BlockNumber) (types.GroupIndex, bool) {
	nGroups := len(s.state.ValidatorGroups)
	if int(core) >= nGroups || at < s.state.SessionStartBlock {
		return 0, false
	}

	info := s.GroupRotationInfo(at)
	group := (uint64(core) + uint64(info.Rotations())) % uint64(nGroups)

	return types.GroupIndex(group), true //nolint:gosec // group < nGroups which fits uint32
}

// GroupRotationInfo describes the rotation schedule as of block number now.
func (s *Scheduler) GroupRotationInfo(now types.BlockNumber) types.GroupRotationInfo {
	return types.GroupRotationInfo{
		SessionStartBlock:      s.state.SessionStartBlock,
		GroupRotationFrequency: s.state.Config.GroupRotationFrequency,
		Now:                    now,
	}
}

// AvailabilityTimeoutPredicate returns a predicate deciding whether a core's
// pending candidate has timed out as of block number now, or nil when no
// timeouts can fire at all this block.
//
// Timeouts only fire early in a rotation period: once enough blocks have
// passed since the last rotation for the longest availability period to have
// elapsed within it, every pending candidate still has time left, and the
// block driver can skip the timeout sweep entirely.
//
// The returned predicate closes over a copy of the occupancy vector, so it
// stays valid after the scheduler mutates state.
func (s *Scheduler) AvailabilityTimeoutPredicate(now types.BlockNumber) func(types.CoreIndex, types.BlockNumber) bool {
	config := s.state.Config

	sinceRotation := now.SaturatingSub(s.state.SessionStartBlock) % config.GroupRotationFrequency
	cutoff := max(config.IndracoreAvailabilityPeriod, config.IndrabaseAvailabilityPeriod)
	if cutoff <= sinceRotation {
		return nil
	}

	cores := slices.Clone(s.state.AvailabilityCores)

	periodUp := func(period, pendingSince types.BlockNumber) bool {
		// The checking group rotated more recently than the period: the
		// current group has not had the full window yet.
		if sinceRotation >= period {
			return false
		}

		return now.SaturatingSub(pendingSince) >= period
	}

	return func(core types.CoreIndex, pendingSince types.BlockNumber) bool {
		if int(core) >= len(cores) {
			return true
		}

		switch cores[core].Kind {
		case types.CoreIndracore:
			return periodUp(config.IndracoreAvailabilityPeriod, pendingSince)
		case types.CoreIndrabase:
			return periodUp(config.IndrabaseAvailabilityPeriod, pendingSince)
		default:
			return true
		}
	}
}
