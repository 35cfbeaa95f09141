package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indranet/coresched/types"
)

func sampleState() *types.SchedulerState {
	return &types.SchedulerState{
		ValidatorGroups: [][]types.ValidatorIndex{{0, 1}, {2, 3}},
		AvailabilityCores: []types.CoreOccupancy{
			{Kind: types.CoreIndracore},
			{Kind: types.CoreIndrabase, Entry: types.IndrabaseEntry{
				Claim:   types.IndrabaseClaim{ID: 10, Collator: "col-a"},
				Retries: 1,
			}},
		},
		Queue: types.ClaimQueue{
			Entries: []types.QueuedClaim{
				{Claim: types.IndrabaseEntry{Claim: types.IndrabaseClaim{ID: 11, Collator: "col-b"}}, CoreOffset: 1},
			},
			NextCoreOffset: 2,
		},
		ClaimIndex:        types.ClaimIndex{10, 11},
		SessionStartBlock: 42,
		Scheduled: []types.CoreAssignment{
			{Core: 0, IndraID: 1, Kind: types.AssignIndracore, GroupIndex: 0},
		},
		Config: types.SessionConfig{
			IndrabaseCores:         3,
			GroupRotationFrequency: 10,
			SchedulingLookahead:    2,
		},
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	state := sampleState()

	data, err := Marshal(state)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, state, decoded)
}

func TestMarshalDeterministic(t *testing.T) {
	// Two independently built equal states must encode to identical bytes;
	// divergence detection across validators depends on it.
	a, err := Marshal(sampleState())
	require.NoError(t, err)
	b, err := Marshal(sampleState())
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestDigest(t *testing.T) {
	t.Run("equal states share a digest", func(t *testing.T) {
		a, err := Digest(sampleState())
		require.NoError(t, err)
		b, err := Digest(sampleState())
		require.NoError(t, err)

		require.Equal(t, a, b)
	})

	t.Run("divergent states differ", func(t *testing.T) {
		a, err := Digest(sampleState())
		require.NoError(t, err)

		diverged := sampleState()
		diverged.Queue.NextCoreOffset = 0

		b, err := Digest(diverged)
		require.NoError(t, err)

		require.NotEqual(t, a, b)
	})
}
