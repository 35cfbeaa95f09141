// Package coresched assigns a relay chain's availability cores to indracore
// and indrabase workloads and partitions the active validator set into
// per-core groups with periodic rotation.
//
// The Scheduler manages resource allocation using the concept of
// "availability cores": one core per registered indracore plus a configured
// number of cores multiplexed between collator-submitted indrabase claims.
// Validator groups are rebuilt each session, one per core, and the
// core/group binding shifts by one every rotation period.
//
// # Quick Start
//
//	reg := registry.NewStatic(indracores, indrabases)
//	sched, err := coresched.New(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sched.OnNewSession(&coresched.SessionChangeNotification{
//	    Validators: validators,
//	    NewConfig:  cfg,
//	    AtBlock:    now,
//	})
//
//	// each block, in order:
//	sched.Clear()
//	sched.Schedule(freed, now)
//	// ... candidates get backed ...
//	sched.Occupied(backedCores)
//
// # Design Goals
//
//   - Work is never assigned to a core whose previous candidate is still
//     pending availability.
//   - Assignment is not gameable: an indrabase claim's core is fixed by
//     arrival order at enqueue time, and group rotation is a pure function
//     of block number, so neither validators nor collators can choose who
//     checks what.
//   - Throughput stays near optimal: every free core is filled whenever
//     eligible work exists.
//   - Everything is a deterministic function of chain state. Every
//     validator executing the same block computes byte-identical scheduler
//     state.
//
// # Concurrency
//
// A Scheduler is driven by a single block-execution pipeline and is NOT safe
// for concurrent use. There is no internal parallelism, no blocking and no
// retries; "timeout" is a domain concept (stale availability) encoded as
// ordinary state. Hosts that serve read queries concurrently must
// synchronize externally or work on a Snapshot.
//
// # Persistence
//
// Scheduler state is one value with read-whole/write-whole semantics. The
// store package provides the StateStore abstraction plus in-memory and NATS
// JetStream backends, a deterministic CBOR codec and an xxh3 state digest
// for cross-validator divergence checks.
package coresched
