package coresched

import "github.com/indranet/coresched/types"

// AddClaim queues an indrabase claim for scheduling.
//
// The claim is dropped without any state change when:
//   - the workload is not a currently live indrabase,
//   - the queue is at its capacity of IndrabaseCores * SchedulingLookahead,
//   - the workload already has an outstanding claim, queued or occupying a
//     core (first claimant wins; a competing claim by another collator is
//     not queued behind it).
//
// Otherwise the claim enters the queue with zero retries at the current
// rotating core offset. The offset depends only on arrival order, not on
// the claim's content, the claimant's identity or the current validator
// groups, so a claimant cannot choose which core or group services it.
func (s *Scheduler) AddClaim(claim types.IndrabaseClaim) {
	if !s.registry.IsLiveIndrabase(claim.ID) {
		s.metrics.RecordClaimRejected(types.ReasonNotLive)

		return
	}

	config := s.state.Config
	if config.IndrabaseCores == 0 {
		// No multiplexer capacity this session; equivalent to a full
		// queue of size zero.
		s.metrics.RecordClaimRejected(types.ReasonQueueFull)

		return
	}

	queueMaxSize := int(config.IndrabaseCores) * int(config.SchedulingLookahead)
	if s.state.Queue.Len() >= queueMaxSize {
		s.logger.Debug("claim rejected: queue full", "indra_id", claim.ID, "queue_len", s.state.Queue.Len())
		s.metrics.RecordClaimRejected(types.ReasonQueueFull)

		return
	}

	if !s.state.ClaimIndex.Insert(claim.ID) {
		s.logger.Debug("claim rejected: competing claim outstanding", "indra_id", claim.ID)
		s.metrics.RecordClaimRejected(types.ReasonDuplicate)

		return
	}

	s.state.Queue.Enqueue(types.IndrabaseEntry{Claim: claim}, config.IndrabaseCores)

	s.metrics.RecordClaimAccepted()
	s.metrics.RecordClaimQueueLength(s.state.Queue.Len())
}
