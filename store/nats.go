package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/indranet/coresched/types"
)

// stateKey is the single key the snapshot lives under. One bucket holds one
// chain's scheduler state.
const stateKey = "scheduler-state"

// NATS implements StateStore on a JetStream key-value bucket.
//
// The whole snapshot is written under a single key, preserving the
// read-whole/write-whole contract; History is kept at 1 since only the
// latest snapshot matters.
type NATS struct {
	kv jetstream.KeyValue
}

var _ StateStore = (*NATS)(nil)

// NATSConfig configures the JetStream-backed state store.
type NATSConfig struct {
	// Bucket is the KV bucket name (default "coresched-state").
	Bucket string

	// Replicas is the bucket replication factor (default 1).
	Replicas int
}

// NewNATS creates a StateStore backed by a JetStream KV bucket, creating the
// bucket if it does not exist.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - nc: NATS connection with JetStream enabled
//   - cfg: Bucket configuration
//
// Returns:
//   - *NATS: Initialized store
//   - error: Connection or bucket creation error
//
// Example:
//
//	st, err := store.NewNATS(ctx, nc, store.NATSConfig{Bucket: "chain-a-sched"})
//	if err != nil { /* handle */ }
//	state, err := st.Load(ctx)
func NewNATS(ctx context.Context, nc *nats.Conn, cfg NATSConfig) (*NATS, error) {
	if nc == nil {
		return nil, ErrConnRequired
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "coresched-state"
	}
	if cfg.Replicas <= 0 {
		cfg.Replicas = 1
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	kv, err := ensureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket:   cfg.Bucket,
		History:  1,
		Replicas: cfg.Replicas,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create/open KV bucket %s: %w", cfg.Bucket, err)
	}

	return &NATS{kv: kv}, nil
}

// Load returns the most recently saved state.
func (n *NATS) Load(ctx context.Context) (*types.SchedulerState, error) {
	entry, err := n.kv.Get(ctx, stateKey)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get scheduler state: %w", err)
	}

	return Unmarshal(entry.Value())
}

// Save replaces the stored snapshot with state.
func (n *NATS) Save(ctx context.Context, state *types.SchedulerState) error {
	data, err := Marshal(state)
	if err != nil {
		return err
	}

	if _, err := n.kv.Put(ctx, stateKey, data); err != nil {
		return fmt.Errorf("failed to put scheduler state: %w", err)
	}

	return nil
}

// ensureBucket creates or opens a KV bucket with retry logic, handling the
// race where several nodes create the same bucket concurrently.
func ensureBucket(ctx context.Context, js jetstream.JetStream, cfg jetstream.KeyValueConfig) (jetstream.KeyValue, error) {
	const maxRetries = 5

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		kv, err := js.CreateKeyValue(ctx, cfg)
		if err == nil {
			return kv, nil
		}

		// If the bucket already exists, just open it.
		if errors.Is(err, jetstream.ErrBucketExists) {
			kv, err := js.KeyValue(ctx, cfg.Bucket)
			if err == nil {
				return kv, nil
			}
			// Fall through to retry if opening failed.
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}
