package types

import "math"

// GroupRotationInfo is a helper for reasoning about group rotation timing,
// handed to downstream backing and collation logic.
type GroupRotationInfo struct {
	// SessionStartBlock is the rotation epoch origin.
	SessionStartBlock BlockNumber `json:"sessionStartBlock"`

	// GroupRotationFrequency is the number of blocks between rotations.
	GroupRotationFrequency BlockNumber `json:"groupRotationFrequency"`

	// Now is the block number the info was computed for.
	Now BlockNumber `json:"now"`
}

// Rotations returns how many rotations have occurred since the session
// started, truncated to 32 bits the same way the rotation clock truncates.
func (g GroupRotationInfo) Rotations() uint32 {
	if g.GroupRotationFrequency == 0 {
		return 0
	}

	rotations := uint64(g.Now.SaturatingSub(g.SessionStartBlock)) / uint64(g.GroupRotationFrequency)
	if rotations > math.MaxUint32 {
		// Only reachable in a session spanning billions of blocks; the
		// rotation clock truncates identically.
		return 0
	}

	return uint32(rotations)
}

// LastRotationAt returns the block at which the most recent rotation
// happened. Before the first rotation this is the session start block.
func (g GroupRotationInfo) LastRotationAt() BlockNumber {
	if g.GroupRotationFrequency == 0 {
		return g.SessionStartBlock
	}

	sinceRotation := g.Now.SaturatingSub(g.SessionStartBlock) % g.GroupRotationFrequency

	return g.Now.SaturatingSub(sinceRotation)
}

// NextRotationAt returns the block at which the next rotation will happen.
func (g GroupRotationInfo) NextRotationAt() BlockNumber {
	return g.LastRotationAt() + g.GroupRotationFrequency
}
