package types

// IndraID is the unique identifier of a workload: either a permanently
// registered indracore or a time-multiplexed indrabase.
type IndraID uint32

// CoreIndex is the 0-based index of an availability core. Cores are
// contiguous: indices [0, n_indracores) are permanently bound to indracores
// and the remainder are indrabase multiplexers.
type CoreIndex uint32

// GroupIndex is the index of a validator group. There is exactly one group
// per availability core in any session.
type GroupIndex uint32

// ValidatorIndex is an index into the session's active validator list. The
// list is shuffled upstream before it reaches the scheduler, so consecutive
// indices do not correspond to related validators.
type ValidatorIndex uint32

// CollatorID identifies the collator that submitted an indrabase claim.
// The scheduler treats it as an opaque identity; key material and signature
// checking live with the host.
type CollatorID string

// BlockNumber is a relay-chain block number.
type BlockNumber uint64

// SaturatingSub returns b - other, clamped at zero.
func (b BlockNumber) SaturatingSub(other BlockNumber) BlockNumber {
	if b < other {
		return 0
	}

	return b - other
}
