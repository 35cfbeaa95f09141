package partition

import "github.com/indranet/coresched/types"

// Balanced implements equal-as-possible validator group partitioning.
type Balanced struct{}

var _ types.GroupStrategy = (*Balanced)(nil)

// NewBalanced creates the default group strategy.
//
// With v validators and c cores, v mod c groups get one extra member and
// occupy the lowest group indices; the rest have the base size v / c.
// Because the validator list is shuffled upstream, contiguous index ranges
// are unbiased samples and no further mixing is needed here.
//
// Returns:
//   - *Balanced: Initialized strategy
func NewBalanced() *Balanced {
	return &Balanced{}
}

// BuildGroups partitions validator indices [0, nValidators) into nCores
// contiguous groups, larger groups first.
//
// Parameters:
//   - nValidators: Size of the session's active validator list
//   - nCores: Number of availability cores (one group each)
//
// Returns:
//   - [][]types.ValidatorIndex: One group per core; nil if either input is
//     zero
func (b *Balanced) BuildGroups(nValidators int, nCores uint32) [][]types.ValidatorIndex {
	if nCores == 0 || nValidators == 0 {
		return nil
	}

	baseSize := nValidators / int(nCores)
	nLargerGroups := nValidators % int(nCores)

	groups := make([][]types.ValidatorIndex, 0, nCores)
	for i := range nLargerGroups {
		offset := (baseSize + 1) * i
		group := make([]types.ValidatorIndex, baseSize+1)
		for j := range group {
			group[j] = types.ValidatorIndex(offset + j) //nolint:gosec // validator counts are far below uint32 range
		}
		groups = append(groups, group)
	}

	for i := range int(nCores) - nLargerGroups {
		offset := nLargerGroups*(baseSize+1) + i*baseSize
		group := make([]types.ValidatorIndex, baseSize)
		for j := range group {
			group[j] = types.ValidatorIndex(offset + j) //nolint:gosec // validator counts are far below uint32 range
		}
		groups = append(groups, group)
	}

	return groups
}
