package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indranet/coresched/types"
)

func TestStaticLiveness(t *testing.T) {
	reg := NewStatic([]types.IndraID{1, 2}, []types.IndraID{10, 11})

	require.True(t, reg.IsLiveIndrabase(10))
	require.True(t, reg.IsLiveIndrabase(11))
	require.False(t, reg.IsLiveIndrabase(12))

	// Indracores are not indrabases.
	require.False(t, reg.IsLiveIndrabase(1))
}

func TestStaticIndracoreOrder(t *testing.T) {
	indracores := []types.IndraID{5, 3, 9}
	reg := NewStatic(indracores, nil)

	// Canonical order is preserved, not sorted.
	require.Equal(t, indracores, reg.LiveIndracoreIDs())

	// The returned slice is a copy.
	got := reg.LiveIndracoreIDs()
	got[0] = 99
	require.Equal(t, types.IndraID(5), reg.LiveIndracoreIDs()[0])
}

func TestStaticRegistrationChanges(t *testing.T) {
	reg := NewStatic(nil, []types.IndraID{10})

	reg.RegisterIndrabase(11)
	require.True(t, reg.IsLiveIndrabase(11))

	reg.DeregisterIndrabase(10)
	require.False(t, reg.IsLiveIndrabase(10))

	reg.SetIndracores([]types.IndraID{1})
	require.Equal(t, []types.IndraID{1}, reg.LiveIndracoreIDs())
}
