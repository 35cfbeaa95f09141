package types

// GroupStrategy partitions a session's validators into per-core groups.
//
// The scheduler calls BuildGroups once per session change. Implementations
// must:
//   - Be deterministic (same input → same output, on every node)
//   - Produce exactly one group per core, covering every validator index
//     exactly once
//   - Keep group sizes within one of each other
//   - Handle edge cases (no validators, no cores) by returning nil
//
// The validator list is shuffled upstream, so strategies work on counts and
// positions only, never on validator identity.
type GroupStrategy interface {
	// BuildGroups partitions validator indices [0, nValidators) into
	// nCores groups. Returns nil when nCores or nValidators is zero.
	BuildGroups(nValidators int, nCores uint32) [][]ValidatorIndex
}
