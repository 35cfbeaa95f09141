package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load before save", func(t *testing.T) {
		m := NewMemory()

		_, err := m.Load(ctx)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		m := NewMemory()
		state := sampleState()

		require.NoError(t, m.Save(ctx, state))

		loaded, err := m.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, state, loaded)
	})

	t.Run("loaded state is an owned copy", func(t *testing.T) {
		m := NewMemory()
		require.NoError(t, m.Save(ctx, sampleState()))

		loaded, err := m.Load(ctx)
		require.NoError(t, err)
		loaded.SessionStartBlock = 999
		loaded.ClaimIndex.Insert(77)

		reloaded, err := m.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, sampleState(), reloaded)
	})

	t.Run("save replaces the snapshot", func(t *testing.T) {
		m := NewMemory()
		require.NoError(t, m.Save(ctx, sampleState()))

		updated := sampleState()
		updated.SessionStartBlock = 100
		require.NoError(t, m.Save(ctx, updated))

		loaded, err := m.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, updated, loaded)
	})
}
