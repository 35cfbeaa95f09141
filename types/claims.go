package types

import "slices"

// IndrabaseClaim is a request by a collator to schedule one indrabase
// workload on a multiplexer core.
type IndrabaseClaim struct {
	// ID is the indrabase workload being claimed.
	ID IndraID `json:"id"`

	// Collator is the identity of the collator backing the claim.
	Collator CollatorID `json:"collator"`
}

// IndrabaseEntry is a claim together with its retry bookkeeping. Retries
// count how many times the claim was scheduled but not backed; availability
// timeouts do not increment it.
type IndrabaseEntry struct {
	Claim   IndrabaseClaim `json:"claim"`
	Retries uint32         `json:"retries"`
}

// QueuedClaim is an indrabase entry pre-assigned to a multiplexer core
// offset. The offset is relative to the start of the multiplexer core range,
// not an absolute core index.
type QueuedClaim struct {
	Claim      IndrabaseEntry `json:"claim"`
	CoreOffset uint32         `json:"coreOffset"`
}

// ClaimQueue is the ordered queue of all pending indrabase claims.
//
// Entries are affinitized to a core offset at enqueue time via a rotating
// counter, so the offset a claim lands on is a function of arrival order
// only. Neither the claim's content nor the claimant's identity can
// influence which core (and therefore which validator group) services it.
type ClaimQueue struct {
	// Entries holds the queued claims in arrival order.
	Entries []QueuedClaim `json:"entries"`

	// NextCoreOffset is the offset the next enqueued entry receives.
	// Always in [0, n_indrabase_cores).
	NextCoreOffset uint32 `json:"nextCoreOffset"`
}

// Enqueue appends an entry to the queue at the current rotating offset.
//
// nIndrabaseCores is the number of multiplexer cores and must be greater
// than zero; callers only enqueue while multiplexer capacity exists.
func (q *ClaimQueue) Enqueue(entry IndrabaseEntry, nIndrabaseCores uint32) {
	offset := q.NextCoreOffset
	q.NextCoreOffset = (q.NextCoreOffset + 1) % nIndrabaseCores

	q.Entries = append(q.Entries, QueuedClaim{Claim: entry, CoreOffset: offset})
}

// TakeNextOnCore removes and returns the first queued entry assigned to the
// given core offset. The second return value is false if no entry is queued
// on that offset.
func (q *ClaimQueue) TakeNextOnCore(offset uint32) (IndrabaseEntry, bool) {
	for i, queued := range q.Entries {
		if queued.CoreOffset == offset {
			entry := queued.Claim
			q.Entries = slices.Delete(q.Entries, i, i+1)

			return entry, true
		}
	}

	return IndrabaseEntry{}, false
}

// PeekNextOnCore returns the first queued entry assigned to the given core
// offset without removing it. The second return value is false if no entry
// is queued on that offset.
func (q *ClaimQueue) PeekNextOnCore(offset uint32) (IndrabaseEntry, bool) {
	for _, queued := range q.Entries {
		if queued.CoreOffset == offset {
			return queued.Claim, true
		}
	}

	return IndrabaseEntry{}, false
}

// Len returns the number of queued claims.
func (q *ClaimQueue) Len() int {
	return len(q.Entries)
}

// Reassign rebalances the queue onto nIndrabaseCores multiplexer cores by
// raw position: entry i gets offset i mod nIndrabaseCores, and the rotating
// counter continues from the end of the queue.
//
// This is a full rebalance that deliberately discards prior offsets. It runs
// on session change and bounds worst-case offset skew to one session's
// churn. Offsets stay derived from ordering, never from claim content.
func (q *ClaimQueue) Reassign(nIndrabaseCores uint32) {
	for i := range q.Entries {
		q.Entries[i].CoreOffset = uint32(i) % nIndrabaseCores //nolint:gosec // queue is bounded well below uint32 range
	}

	q.NextCoreOffset = uint32(len(q.Entries)) % nIndrabaseCores //nolint:gosec // queue is bounded well below uint32 range
}

// ClaimIndex is a sorted set of workload IDs with an outstanding claim,
// either queued or currently occupying a core. It enforces the "at most one
// live claim per indrabase" invariant in O(log n).
type ClaimIndex []IndraID

// Insert adds id to the index, keeping it sorted. Returns false without
// modification if the id is already present.
func (ix *ClaimIndex) Insert(id IndraID) bool {
	i, found := slices.BinarySearch(*ix, id)
	if found {
		return false
	}

	*ix = slices.Insert(*ix, i, id)

	return true
}

// Remove deletes id from the index. Returns false if it was not present.
func (ix *ClaimIndex) Remove(id IndraID) bool {
	i, found := slices.BinarySearch(*ix, id)
	if !found {
		return false
	}

	*ix = slices.Delete(*ix, i, i+1)

	return true
}

// Contains reports whether id has an outstanding claim.
func (ix ClaimIndex) Contains(id IndraID) bool {
	_, found := slices.BinarySearch(ix, id)

	return found
}
