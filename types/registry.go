package types

// WorkloadRegistry exposes the set of registered workloads to the scheduler.
//
// Registration lifecycle is an external concern; the scheduler only needs to
// list indracores and test indrabase liveness. Implementations must return
// identical answers on every node executing the same block, and must only
// change their contents at session boundaries: the scheduler assumes the
// indracore list is stable within a session.
type WorkloadRegistry interface {
	// IsLiveIndrabase reports whether id is a currently registered
	// indrabase.
	IsLiveIndrabase(id IndraID) bool

	// LiveIndracoreIDs returns the registered indracores in their
	// canonical order. Core i is permanently bound to the i'th entry.
	LiveIndracoreIDs() []IndraID
}
