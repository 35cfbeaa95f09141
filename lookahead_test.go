package coresched

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indranet/coresched/types"
)

func TestNextUpOnAvailable(t *testing.T) {
	t.Run("indracore core always has its chain next", func(t *testing.T) {
		s, _ := newTestScheduler(t)

		next, ok := s.NextUpOnAvailable(0)
		require.True(t, ok)
		require.Equal(t, types.ScheduledCore{ID: 1}, next)

		next, ok = s.NextUpOnAvailable(1)
		require.True(t, ok)
		require.Equal(t, types.ScheduledCore{ID: 2}, next)
	})

	t.Run("multiplexer core peeks its queue", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})

		next, ok := s.NextUpOnAvailable(2)
		require.True(t, ok)
		require.Equal(t, types.ScheduledCore{ID: 10, Collator: "col-a"}, next)

		// Peeking must not consume the claim.
		require.Equal(t, 1, s.State().Queue.Len())
	})

	t.Run("empty queue has nothing next", func(t *testing.T) {
		s, _ := newTestScheduler(t)

		_, ok := s.NextUpOnAvailable(3)
		require.False(t, ok)
	})
}

func TestNextUpOnTimeOut(t *testing.T) {
	t.Run("indracore core always has its chain next", func(t *testing.T) {
		s, _ := newTestScheduler(t)

		next, ok := s.NextUpOnTimeOut(0)
		require.True(t, ok)
		require.Equal(t, types.ScheduledCore{ID: 1}, next)
	})

	t.Run("queued claim takes precedence over the occupant", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
		s.Schedule(nil, 1)
		s.Occupied([]types.CoreIndex{2})

		// Fill the rotation until a fresh claim wraps onto offset 0,
		// core 2's slot.
		s.AddClaim(types.IndrabaseClaim{ID: 11})
		s.AddClaim(types.IndrabaseClaim{ID: 12})
		s.AddClaim(types.IndrabaseClaim{ID: 13, Collator: "col-d"})

		next, ok := s.NextUpOnTimeOut(2)
		require.True(t, ok)
		require.Equal(t, types.ScheduledCore{ID: 13, Collator: "col-d"}, next)
	})

	t.Run("falls back to the timed-out occupant", func(t *testing.T) {
		s, _ := newTestScheduler(t)
		s.AddClaim(types.IndrabaseClaim{ID: 10, Collator: "col-a"})
		s.Schedule(nil, 1)
		s.Occupied([]types.CoreIndex{2})

		// Nothing queued on offset 0: a timeout re-enqueues the current
		// occupant, so it is what runs next.
		next, ok := s.NextUpOnTimeOut(2)
		require.True(t, ok)
		require.Equal(t, types.ScheduledCore{ID: 10, Collator: "col-a"}, next)

		// On the available path the core would simply go idle.
		_, ok = s.NextUpOnAvailable(2)
		require.False(t, ok)
	})

	t.Run("free core with empty queue", func(t *testing.T) {
		s, _ := newTestScheduler(t)

		_, ok := s.NextUpOnTimeOut(4)
		require.False(t, ok)
	})
}
