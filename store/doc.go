// Package store persists coresched scheduler state.
//
// The scheduler treats its state as one value replaced wholesale each block:
// the block driver loads it, runs the block's scheduling phases, and saves
// the result. StateStore captures exactly that read-whole/write-whole
// contract.
//
// Snapshots are encoded with deterministic CBOR so that every node produces
// the same bytes for the same state; Digest exposes an xxh3 fingerprint of
// that encoding for cheap cross-validator divergence checks.
//
// Two backends are provided: Memory for embedding and tests, and NATS for
// hosts that keep coordination state in a JetStream key-value bucket.
package store
