package coresched

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indranet/coresched/types"
)

func requireSortedByCore(t *testing.T, scheduled []types.CoreAssignment) {
	t.Helper()

	for i := 1; i < len(scheduled); i++ {
		require.Less(t, scheduled[i-1].Core, scheduled[i].Core, "scheduled list must be strictly ascending")
	}
}

func TestSchedule(t *testing.T) {
	t.Run("assigns indracores and queued claims", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
		s.AddClaim(types.IndrabaseClaim{ID: 11, Collator: "col-b"})

		s.Schedule(nil, 1)

		scheduled := s.Scheduled()
		require.Len(t, scheduled, 4)
		requireSortedByCore(t, scheduled)

		require.Equal(t, types.CoreAssignment{
			Core: 0, IndraID: 1, Kind: types.AssignIndracore, GroupIndex: 0,
		}, scheduled[0])
		require.Equal(t, types.CoreAssignment{
			Core: 1, IndraID: 2, Kind: types.AssignIndracore, GroupIndex: 1,
		}, scheduled[1])
		require.Equal(t, types.CoreAssignment{
			Core: 2, IndraID: 10, Kind: types.AssignIndrabase, Collator: "col-a", GroupIndex: 2,
		}, scheduled[2])
		require.Equal(t, types.CoreAssignment{
			Core: 3, IndraID: 11, Kind: types.AssignIndrabase, Collator: "col-b", GroupIndex: 3,
		}, scheduled[3])

		// Scheduled claims left the queue but keep their index entry.
		require.Zero(t, s.State().Queue.Len())
		require.True(t, s.State().ClaimIndex.Contains(10))
		require.True(t, s.State().ClaimIndex.Contains(11))
	})

	t.Run("idempotent within a block", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})

		s.Schedule(nil, 1)
		first := s.Scheduled()
		s.Schedule(nil, 1)

		require.Equal(t, first, s.Scheduled())
	})

	t.Run("groups follow rotation", func(t *testing.T) {
		s, _ := newTestScheduler(t)

		s.Schedule(nil, 11)

		scheduled := s.Scheduled()
		require.Len(t, scheduled, 2)
		require.Equal(t, types.GroupIndex(1), scheduled[0].GroupIndex)
		require.Equal(t, types.GroupIndex(2), scheduled[1].GroupIndex)
	})

	t.Run("before session start schedules nothing", func(t *testing.T) {
		s, _ := newTestScheduler(t)

		s.Schedule(nil, 0)

		require.Empty(t, s.Scheduled())
	})

	t.Run("fires scheduled hook with new assignments only", func(t *testing.T) {
		var calls [][]types.CoreAssignment
		hooks := &types.Hooks{
			OnAssignmentsScheduled: func(assignments []types.CoreAssignment) error {
				calls = append(calls, assignments)

				return nil
			},
		}

		s, _ := newTestScheduler(t, WithHooks(hooks))
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})

		s.Schedule(nil, 1)
		require.Len(t, calls, 1)
		require.Len(t, calls[0], 3)

		// Re-scheduling with nothing new must not fire the hook again.
		s.Schedule(nil, 1)
		require.Len(t, calls, 1)
	})
}

func TestScheduleInsertsFreedCoreInOrder(t *testing.T) {
	s, _ := newTestScheduler(t)
	for _, id := range []types.IndraID{10, 11, 12} {
		s.AddClaim(types.IndrabaseClaim{ID: id})
	}

	s.Schedule(nil, 1)
	require.Len(t, s.Scheduled(), 5)

	s.Occupied([]types.CoreIndex{2, 3})
	s.AddClaim(types.IndrabaseClaim{ID: 13}) // wraps to offset 0, core 2

	// Core 2 concludes and is refilled; its assignment must land between
	// the surviving entries, keeping the list ordered.
	s.Schedule([]types.CoreFreed{{Core: 2, Reason: types.FreedConcluded}}, 1)

	scheduled := s.Scheduled()
	requireSortedByCore(t, scheduled)
	require.Len(t, scheduled, 4)
	require.Equal(t, types.CoreIndex(2), scheduled[2].Core)
	require.Equal(t, types.IndraID(13), scheduled[2].IndraID)
	require.Equal(t, types.CoreIndex(4), scheduled[3].Core)

	// Core 3 is still occupied by claim 11.
	id, ok := s.CoreWorkload(3)
	require.True(t, ok)
	require.Equal(t, types.IndraID(11), id)
}

func TestFreeCores(t *testing.T) {
	occupyCore2 := func(t *testing.T) (*Scheduler, types.IndraID) {
		t.Helper()

		s, _ := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
		s.Schedule(nil, 1)
		s.Occupied([]types.CoreIndex{2})

		return s, 10
	}

	t.Run("concluded releases the claim", func(t *testing.T) {
		s, id := occupyCore2(t)

		s.FreeCores([]types.CoreFreed{{Core: 2, Reason: types.FreedConcluded}})

		require.True(t, s.AvailabilityCores()[2].IsFree())
		require.False(t, s.State().ClaimIndex.Contains(id))
		require.Zero(t, s.State().Queue.Len())

		// The workload may claim again immediately.
		s.AddClaim(types.IndrabaseClaim{ID: id, Collator: "col-a"})
		require.Equal(t, 1, s.State().Queue.Len())
	})

	t.Run("timed out goes back on the queue", func(t *testing.T) {
		s, id := occupyCore2(t)

		s.FreeCores([]types.CoreFreed{{Core: 2, Reason: types.FreedTimedOut}})

		require.True(t, s.AvailabilityCores()[2].IsFree())
		require.True(t, s.State().ClaimIndex.Contains(id))
		require.Equal(t, 1, s.State().Queue.Len())

		// A timeout is not a retry; the count is unchanged and the claim
		// re-affinitizes through the rotating offset.
		queued := s.State().Queue.Entries[0]
		require.Zero(t, queued.Claim.Retries)
		require.Equal(t, uint32(1), queued.CoreOffset)
	})

	t.Run("out of range and free cores ignored", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		before := s.Snapshot()

		s.FreeCores([]types.CoreFreed{
			{Core: 4, Reason: types.FreedConcluded},
			{Core: 9, Reason: types.FreedTimedOut},
		})

		require.Equal(t, before, s.Snapshot())
	})
}

func TestOccupied(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
	s.Schedule(nil, 1)

	s.Occupied([]types.CoreIndex{0, 2})

	cores := s.AvailabilityCores()
	require.Equal(t, types.CoreIndracore, cores[0].Kind)
	require.True(t, cores[1].IsFree())
	require.Equal(t, types.CoreIndrabase, cores[2].Kind)
	require.Equal(t, types.IndraID(10), cores[2].Entry.Claim.ID)

	// Unbacked assignments stay scheduled.
	scheduled := s.Scheduled()
	require.Len(t, scheduled, 1)
	require.Equal(t, types.CoreIndex(1), scheduled[0].Core)
}

func TestClear(t *testing.T) {
	t.Run("retry lifecycle drops the claim at the limit", func(t *testing.T) {
		var dropped []string
		hooks := &types.Hooks{
			OnClaimDropped: func(_ types.IndraID, reason string) error {
				dropped = append(dropped, reason)

				return nil
			},
		}

		s, _ := newTestScheduler(t, WithHooks(hooks))
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})

		// First attempt: scheduled, never backed.
		s.Schedule(nil, 1)
		s.Clear()

		require.Equal(t, 1, s.State().Queue.Len())
		require.Equal(t, uint32(1), s.State().Queue.Entries[0].Claim.Retries)
		require.Empty(t, s.Scheduled())

		// Second attempt exhausts the retry limit of 1.
		s.Schedule(nil, 2)
		s.Clear()

		require.Zero(t, s.State().Queue.Len())
		require.False(t, s.State().ClaimIndex.Contains(10))
		require.Equal(t, []string{types.ReasonRetryLimit}, dropped)

		// With the index entry gone the workload may claim afresh.
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
		require.Equal(t, 1, s.State().Queue.Len())
		require.Zero(t, s.State().Queue.Entries[0].Claim.Retries)
	})

	t.Run("deregistered workload dropped instead of requeued", func(t *testing.T) {
		s, reg := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
		s.Schedule(nil, 1)

		reg.DeregisterIndrabase(10)
		s.Clear()

		require.Zero(t, s.State().Queue.Len())
		require.False(t, s.State().ClaimIndex.Contains(10))
	})

	t.Run("indracore assignments simply vanish", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		s.Schedule(nil, 1)
		require.Len(t, s.Scheduled(), 2)

		s.Clear()
		require.Empty(t, s.Scheduled())

		// They come right back on the next block's schedule.
		s.Schedule(nil, 2)
		require.Len(t, s.Scheduled(), 2)
	})
}
