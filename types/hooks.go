package types

// Hooks defines callbacks for scheduler events.
//
// Unlike typical lifecycle hooks, these run synchronously inside the block
// execution path: the scheduler is single-threaded and callbacks observe
// state mid-transition. Hooks must therefore:
//   - Complete quickly (they extend block execution time)
//   - Never mutate scheduler state or anything feeding back into it
//   - Stay deterministic if their effects are observable on chain
//
// Hook errors are logged and otherwise ignored; they never fail the
// operation that triggered them. All hooks are optional.
type Hooks struct {
	// OnSessionChanged is called after a session change rebuilt cores and
	// groups.
	OnSessionChanged func(startBlock BlockNumber, cores, groups int) error

	// OnAssignmentsScheduled is called after Schedule produced new
	// assignments. The slice is the newly added assignments only, in core
	// order.
	OnAssignmentsScheduled func(assignments []CoreAssignment) error

	// OnClaimDropped is called when an accepted claim is retired without
	// concluding: retry limit, deregistration or session reconfiguration.
	OnClaimDropped func(id IndraID, reason string) error
}
