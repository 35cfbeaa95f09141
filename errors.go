package coresched

import "errors"

// Sentinel errors returned by the Scheduler constructor.
//
// The scheduling operations themselves return no errors: per the chain-state
// model, every malformed input (dead workload, duplicate claim, full queue,
// out-of-range core) is defined as a no-op rather than a failure.
var (
	// ErrRegistryRequired is returned when the workload registry is nil.
	ErrRegistryRequired = errors.New("workload registry is required")
)
