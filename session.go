package coresched

import "github.com/indranet/coresched/types"

// OnNewSession notes that a new session has started, rebuilding cores and
// validator groups for the new validator set and configuration.
//
// The steps, in order:
//  1. Compute the core count: one core per indracore plus the configured
//     multiplexer cores, raised if needed so no group would exceed
//     MaxValidatorsPerCore validators.
//  2. Clear all occupied cores, converting indrabase occupants back into
//     queued claims (their offsets are fixed by the rebalance below) and
//     dropping indracore occupants, then resize the occupancy vector.
//  3. Partition validators into one group per core via the group strategy.
//  4. Prune the claim queue of dead or retry-exhausted claims, then
//     rebalance every surviving claim's core offset by queue position. With
//     zero multiplexer cores the queue and claim index are wiped instead.
//  5. Record the next block as the session start, the rotation epoch
//     origin.
//
// None of these steps can fail. Malformed configuration (for instance zero
// cores with a nonzero validator set) degenerates to empty groups, which
// schedules nothing rather than erroring.
//
// A nil notification is ignored.
func (s *Scheduler) OnNewSession(notification *types.SessionChangeNotification) {
	if notification == nil {
		s.logger.Error("nil session change notification ignored")

		return
	}

	config := notification.NewConfig.Sanitize(s.logger)
	validators := notification.Validators

	nIndracores := len(s.registry.LiveIndracoreIDs())
	nCores := uint32(nIndracores) + config.IndrabaseCores //nolint:gosec // core counts are far below uint32 range
	if config.MaxValidatorsPerCore != 0 {
		if forced := uint32(len(validators)) / config.MaxValidatorsPerCore; forced > nCores { //nolint:gosec // validator counts are far below uint32 range
			nCores = forced
		}
	}

	// Clear all occupied cores. Indrabase occupants go back on the queue;
	// their core offsets are placeholders until the rebalance below.
	for _, occ := range s.state.AvailabilityCores {
		if occ.Kind == types.CoreIndrabase {
			s.state.Queue.Entries = append(s.state.Queue.Entries, types.QueuedClaim{Claim: occ.Entry})
		}
	}
	s.state.AvailabilityCores = make([]types.CoreOccupancy, nCores)

	s.state.ValidatorGroups = s.strategy.BuildGroups(len(validators), nCores)

	s.pruneClaims(config)

	s.state.Config = config
	s.state.SessionStartBlock = notification.AtBlock + 1

	s.logger.Info("session changed",
		"session_start_block", s.state.SessionStartBlock,
		"cores", nCores,
		"validators", len(validators),
		"queued_claims", s.state.Queue.Len(),
	)
	s.metrics.RecordSessionChange(int(nCores), len(validators), s.state.Queue.Len())

	if s.hooks.OnSessionChanged != nil {
		if err := s.hooks.OnSessionChanged(s.state.SessionStartBlock, int(nCores), len(s.state.ValidatorGroups)); err != nil {
			s.logger.Error("session change hook error", "error", err)
		}
	}
}

// pruneClaims drops queue entries that exceeded the retry limit or whose
// workload is no longer a live indrabase, then rebalances the surviving
// entries' core offsets by position. With no multiplexer cores configured,
// all indrabase bookkeeping is wiped.
func (s *Scheduler) pruneClaims(config types.SessionConfig) {
	if config.IndrabaseCores == 0 {
		for _, queued := range s.state.Queue.Entries {
			s.dropClaim(queued.Claim.Claim.ID, types.ReasonNoMultiplexerCores)
		}
		s.state.Queue = types.ClaimQueue{}
		s.state.ClaimIndex = nil

		return
	}

	kept := s.state.Queue.Entries[:0]
	for _, queued := range s.state.Queue.Entries {
		id := queued.Claim.Claim.ID

		switch {
		case queued.Claim.Retries > config.IndrabaseRetryLimit:
			s.state.ClaimIndex.Remove(id)
			s.dropClaim(id, types.ReasonRetryLimit)
		case !s.registry.IsLiveIndrabase(id):
			s.state.ClaimIndex.Remove(id)
			s.dropClaim(id, types.ReasonDeregistered)
		default:
			kept = append(kept, queued)
		}
	}
	s.state.Queue.Entries = kept

	s.state.Queue.Reassign(config.IndrabaseCores)
}

// dropClaim reports a claim retired without conclusion.
func (s *Scheduler) dropClaim(id types.IndraID, reason string) {
	s.logger.Debug("claim dropped", "indra_id", id, "reason", reason)
	s.metrics.RecordClaimDropped(reason)

	if s.hooks.OnClaimDropped != nil {
		if err := s.hooks.OnClaimDropped(id, reason); err != nil {
			s.logger.Error("claim drop hook error", "indra_id", id, "error", err)
		}
	}
}
