package partition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indranet/coresched/types"
)

func TestBalancedBuildGroups(t *testing.T) {
	strategy := NewBalanced()

	t.Run("even split", func(t *testing.T) {
		groups := strategy.BuildGroups(10, 5)

		require.Len(t, groups, 5)
		require.Equal(t, []types.ValidatorIndex{0, 1}, groups[0])
		require.Equal(t, []types.ValidatorIndex{8, 9}, groups[4])
	})

	t.Run("remainder goes to lowest indices", func(t *testing.T) {
		groups := strategy.BuildGroups(7, 3)

		require.Len(t, groups, 3)
		require.Equal(t, []types.ValidatorIndex{0, 1, 2}, groups[0])
		require.Equal(t, []types.ValidatorIndex{3, 4}, groups[1])
		require.Equal(t, []types.ValidatorIndex{5, 6}, groups[2])
	})

	t.Run("covers every validator exactly once", func(t *testing.T) {
		groups := strategy.BuildGroups(23, 6)

		seen := make(map[types.ValidatorIndex]bool)
		for _, group := range groups {
			for _, v := range group {
				require.False(t, seen[v], "validator %d assigned twice", v)
				seen[v] = true
			}
		}
		require.Len(t, seen, 23)
	})

	t.Run("more cores than validators yields empty groups", func(t *testing.T) {
		groups := strategy.BuildGroups(2, 5)

		require.Len(t, groups, 5)
		require.Equal(t, []types.ValidatorIndex{0}, groups[0])
		require.Equal(t, []types.ValidatorIndex{1}, groups[1])
		require.Empty(t, groups[2])
		require.Empty(t, groups[3])
		require.Empty(t, groups[4])
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		require.Nil(t, strategy.BuildGroups(0, 5))
		require.Nil(t, strategy.BuildGroups(10, 0))
	})
}
