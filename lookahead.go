package coresched

import "github.com/indranet/coresched/types"

// NextUpOnAvailable returns what will be scheduled on the core once its
// current candidate makes it to availability, letting collators prepare the
// next candidate ahead of time. It returns false when nothing would be
// scheduled.
func (s *Scheduler) NextUpOnAvailable(core types.CoreIndex) (types.ScheduledCore, bool) {
	indracores := s.registry.LiveIndracoreIDs()
	if int(core) < len(indracores) {
		return types.ScheduledCore{ID: indracores[core]}, true
	}

	return s.nextQueuedOnCore(core, len(indracores))
}

// NextUpOnTimeOut is NextUpOnAvailable for the timeout path: a timed-out
// indrabase candidate goes back on the queue, so when the queue holds
// nothing newer the same claim comes up again.
func (s *Scheduler) NextUpOnTimeOut(core types.CoreIndex) (types.ScheduledCore, bool) {
	indracores := s.registry.LiveIndracoreIDs()
	if int(core) < len(indracores) {
		return types.ScheduledCore{ID: indracores[core]}, true
	}

	if next, ok := s.nextQueuedOnCore(core, len(indracores)); ok {
		return next, true
	}

	if int(core) < len(s.state.AvailabilityCores) {
		occ := s.state.AvailabilityCores[core]
		if occ.Kind == types.CoreIndrabase {
			return types.ScheduledCore{
				ID:       occ.Entry.Claim.ID,
				Collator: occ.Entry.Claim.Collator,
			}, true
		}
	}

	return types.ScheduledCore{}, false
}

func (s *Scheduler) nextQueuedOnCore(core types.CoreIndex, nIndracores int) (types.ScheduledCore, bool) {
	offset := uint32(int(core) - nIndracores) //nolint:gosec // core >= nIndracores by the callers' checks

	entry, ok := s.state.Queue.PeekNextOnCore(offset)
	if !ok {
		return types.ScheduledCore{}, false
	}

	return types.ScheduledCore{ID: entry.Claim.ID, Collator: entry.Claim.Collator}, true
}
