package coresched

import (
	"slices"

	"github.com/indranet/coresched/types"
)

// FreeCores clears the given cores' occupants. The list is assumed to be
// sorted ascending by core index. Out-of-range indices and already-free
// cores are ignored.
//
// An indrabase occupant freed as Concluded releases its claim-index entry so
// the collator may submit a fresh claim. Freed as TimedOut, the occupant
// goes back on the queue with its retry count unchanged (a timeout is not
// the collator's fault) and re-affinitizes through the normal rotating
// offset.
func (s *Scheduler) FreeCores(justFreed []types.CoreFreed) {
	config := s.state.Config

	var concluded, timedOut int
	for _, freed := range justFreed {
		if int(freed.Core) >= len(s.state.AvailabilityCores) {
			continue
		}

		occ := s.state.AvailabilityCores[freed.Core]
		if occ.IsFree() {
			continue
		}
		s.state.AvailabilityCores[freed.Core] = types.CoreOccupancy{}

		switch freed.Reason {
		case types.FreedConcluded:
			concluded++
		case types.FreedTimedOut:
			timedOut++
		}

		if occ.Kind != types.CoreIndrabase {
			continue
		}

		switch freed.Reason {
		case types.FreedConcluded:
			// The candidate was included; open the workload up for
			// further claims.
			s.state.ClaimIndex.Remove(occ.Entry.Claim.ID)
		case types.FreedTimedOut:
			s.state.Queue.Enqueue(occ.Entry, config.IndrabaseCores)
		}
	}

	if concluded > 0 {
		s.metrics.RecordFreedCores(types.FreedConcluded, concluded)
	}
	if timedOut > 0 {
		s.metrics.RecordFreedCores(types.FreedTimedOut, timedOut)
	}
}

// Schedule frees the given cores and then fills every unassigned core where
// eligible work exists, as of block number now.
//
// Indracore cores always get their bound indracore. Multiplexer cores get
// the next queued claim on their offset, if any. Newly computed assignments
// merge into the existing Scheduled list preserving its strict core-index
// ordering.
//
// The sweep advances a cursor over the (sorted) existing Scheduled list in
// lock-step with the ascending core walk, so the whole call is O(cores +
// existing assignments), and each insertion position is the original
// position plus the number of insertions already applied before it.
func (s *Scheduler) Schedule(justFreed []types.CoreFreed, now types.BlockNumber) {
	s.FreeCores(justFreed)

	if len(s.state.ValidatorGroups) == 0 {
		// Degenerate session: nothing can be checked, so nothing is
		// scheduled.
		return
	}

	indracores := s.registry.LiveIndracoreIDs()
	scheduled := s.state.Scheduled

	type update struct {
		insertAt   int
		assignment types.CoreAssignment
	}

	var updates []update

	cursor := 0
	for coreIndex := range s.state.AvailabilityCores {
		if !s.state.AvailabilityCores[coreIndex].IsFree() {
			continue
		}

		// Advance the cursor until just before the core we are looking
		// at now. Three cases follow:
		//  1. No entry at or past this core: schedule and append.
		//  2. Entry with this exact core index: already scheduled, skip.
		//  3. Entry with a higher index: schedule and insert before it.
		for cursor < len(scheduled) && int(scheduled[cursor].Core) < coreIndex {
			cursor++
		}

		insertAt := len(scheduled)
		if cursor < len(scheduled) {
			if int(scheduled[cursor].Core) == coreIndex {
				continue
			}
			insertAt = cursor
		}

		core := types.CoreIndex(coreIndex) //nolint:gosec // core counts are far below uint32 range

		group, ok := s.GroupForCore(core, now)
		if !ok {
			// Core index is in range and now is at or past the session
			// start, so this branch is unreachable; losing an
			// assignment is the safe failure.
			s.logger.Error("no group for in-range core", "core", core, "now", now)

			continue
		}

		var assignment types.CoreAssignment
		if coreIndex < len(indracores) {
			assignment = types.CoreAssignment{
				Core:       core,
				IndraID:    indracores[coreIndex],
				Kind:       types.AssignIndracore,
				GroupIndex: group,
			}
		} else {
			offset := uint32(coreIndex - len(indracores)) //nolint:gosec // core counts are far below uint32 range
			entry, ok := s.state.Queue.TakeNextOnCore(offset)
			if !ok {
				continue
			}

			assignment = types.CoreAssignment{
				Core:       core,
				IndraID:    entry.Claim.ID,
				Kind:       types.AssignIndrabase,
				Collator:   entry.Claim.Collator,
				Retries:    entry.Retries,
				GroupIndex: group,
			}
		}

		updates = append(updates, update{insertAt: insertAt, assignment: assignment})
	}

	// The sweep visited free cores in ascending order over a sorted list,
	// so applying each insertion at its original position plus the number
	// of prior insertions keeps the list sorted.
	for n, u := range updates {
		scheduled = slices.Insert(scheduled, u.insertAt+n, u.assignment)
	}

	s.state.Scheduled = scheduled

	if len(updates) > 0 {
		s.metrics.RecordScheduledCores(len(updates))
		s.metrics.RecordClaimQueueLength(s.state.Queue.Len())

		if s.hooks.OnAssignmentsScheduled != nil {
			added := make([]types.CoreAssignment, len(updates))
			for i, u := range updates {
				added[i] = u.assignment
			}
			if err := s.hooks.OnAssignmentsScheduled(added); err != nil {
				s.logger.Error("assignments scheduled hook error", "error", err)
			}
		}
	}
}

// Occupied notes that the given cores' scheduled candidates have been
// backed, moving each matching Scheduled entry into the core-occupancy
// vector.
//
// nowOccupied must be a sorted subset of the core indices currently in
// Scheduled; behavior is undefined otherwise. That is a caller contract,
// not something the scheduler validates beyond skipping entries it cannot
// match; a detected mismatch is logged as an integrity bug.
func (s *Scheduler) Occupied(nowOccupied []types.CoreIndex) {
	if len(nowOccupied) == 0 {
		return
	}

	kept := s.state.Scheduled[:0]
	matched := 0
	next := 0
	for _, assignment := range s.state.Scheduled {
		if next < len(nowOccupied) && nowOccupied[next] == assignment.Core {
			next++
			matched++
			s.state.AvailabilityCores[assignment.Core] = assignment.ToOccupancy()

			continue
		}

		kept = append(kept, assignment)
	}
	s.state.Scheduled = kept

	if matched != len(nowOccupied) {
		s.logger.Error("occupied cores not a sorted subset of scheduled",
			"matched", matched,
			"requested", len(nowOccupied),
		)
	}

	s.metrics.RecordOccupiedCores(matched)
}

// Clear frees all scheduled cores, returning indrabase claims to the queue
// with their retry counts incremented. Claims past the retry limit, and
// claims whose workload has been deregistered, are retired instead and
// release their claim-index entry. Indracore assignments are simply
// discarded; indracores are re-assigned on every Schedule call.
//
// The block driver calls Clear at the start of each block's inclusion
// phase, before the next Schedule, so a core is never double-scheduled.
func (s *Scheduler) Clear() {
	config := s.state.Config

	for _, assignment := range s.state.Scheduled {
		if assignment.Kind != types.AssignIndrabase {
			continue
		}

		id := assignment.IndraID
		if !s.registry.IsLiveIndrabase(id) {
			s.state.ClaimIndex.Remove(id)
			s.dropClaim(id, types.ReasonDeregistered)

			continue
		}

		entry := types.IndrabaseEntry{
			Claim:   types.IndrabaseClaim{ID: id, Collator: assignment.Collator},
			Retries: assignment.Retries + 1,
		}
		if entry.Retries > config.IndrabaseRetryLimit {
			s.state.ClaimIndex.Remove(id)
			s.dropClaim(id, types.ReasonRetryLimit)

			continue
		}

		s.state.Queue.Enqueue(entry, config.IndrabaseCores)
	}

	s.state.Scheduled = nil
	s.metrics.RecordClaimQueueLength(s.state.Queue.Len())
}
