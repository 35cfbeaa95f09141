package store

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/indranet/coresched/types"
)

// encMode is the deterministic (core deterministic profile) CBOR encoder.
// Sorted map keys and shortest-form integers make the encoding a pure
// function of the state value.
var encMode, decMode = func() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("coresched: invalid CBOR encode options: %v", err))
	}

	dec, err := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("coresched: invalid CBOR decode options: %v", err))
	}

	return enc, dec
}()

// Marshal encodes a state snapshot as deterministic CBOR.
//
// Parameters:
//   - state: Snapshot to encode
//
// Returns:
//   - []byte: Canonical encoding
//   - error: Encoding error
func Marshal(state *types.SchedulerState) ([]byte, error) {
	data, err := encMode.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scheduler state: %w", err)
	}

	return data, nil
}

// Unmarshal decodes a state snapshot produced by Marshal.
//
// Parameters:
//   - data: Canonical encoding
//
// Returns:
//   - *types.SchedulerState: Decoded snapshot
//   - error: Decoding error
func Unmarshal(data []byte) (*types.SchedulerState, error) {
	state := types.NewState()
	if err := decMode.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode scheduler state: %w", err)
	}

	return state, nil
}
