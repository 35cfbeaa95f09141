// Package types contains the data model and interfaces shared across the
// coresched library.
//
// It defines the on-chain scheduler state (availability cores, validator
// groups, the indrabase claim queue and claim index) along with the small
// interfaces the Scheduler consumes: WorkloadRegistry, GroupStrategy, Logger,
// MetricsCollector and Hooks.
//
// Keeping these definitions in a leaf package lets internal packages depend
// on them without importing the root coresched package, avoiding import
// cycles. The root package re-exports the common names via type aliases.
//
// Every type that is part of SchedulerState is a plain value with slice-based
// collections only. Iteration order and serialized form must be identical on
// every node replaying the same blocks, so maps are deliberately absent.
package types
