package coresched

import (
	"slices"

	"github.com/indranet/coresched/internal/logging"
	"github.com/indranet/coresched/internal/metrics"
	"github.com/indranet/coresched/partition"
	"github.com/indranet/coresched/types"
)

// Scheduler is the availability-core scheduler state machine.
//
// It owns one chain's scheduler state and mutates it through the per-block
// protocol: Clear, then Schedule (which frees concluded/timed-out cores and
// fills every free core), then Occupied once candidates are backed. Session
// boundaries go through OnNewSession, which rebuilds cores and validator
// groups and rebalances the claim queue.
//
// Every operation is a synchronous, terminating function of current state
// plus inputs. A Scheduler is NOT safe for concurrent use; the block
// execution driver is the one logical writer.
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type CoreScheduler interface {
//	    Schedule(freed []coresched.CoreFreed, now coresched.BlockNumber)
//	    Scheduled() []coresched.CoreAssignment
//	}
type Scheduler struct {
	registry types.WorkloadRegistry
	strategy types.GroupStrategy
	hooks    *types.Hooks
	metrics  types.MetricsCollector
	logger   types.Logger

	state *types.SchedulerState
}

// New creates a Scheduler for the given workload registry.
//
// Returns a concrete *Scheduler struct following the "accept interfaces,
// return structs" principle.
//
// Parameters:
//   - registry: Workload registry listing indracores and testing indrabase
//     liveness
//   - opts: Optional configuration (group strategy, hooks, metrics, logger,
//     restored state)
//
// Returns:
//   - *Scheduler: Initialized scheduler at genesis state unless WithState
//     was given
//   - error: Validation error if required dependencies are missing
//
// Example:
//
//	reg := registry.NewStatic(indracores, indrabases)
//	sched, err := coresched.New(reg, coresched.WithLogger(logger))
func New(registry types.WorkloadRegistry, opts ...Option) (*Scheduler, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}

	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks
	// everywhere.
	strategy := options.strategy
	if strategy == nil {
		strategy = partition.NewBalanced()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	hooksInstance := options.hooks
	if hooksInstance == nil {
		hooksInstance = &types.Hooks{}
	}

	state := options.state
	if state == nil {
		state = types.NewState()
	}

	return &Scheduler{
		registry: registry,
		strategy: strategy,
		hooks:    hooksInstance,
		metrics:  metricsCollector,
		logger:   loggerInstance,
		state:    state,
	}, nil
}

// Initialize is called at the start of block execution, before any
// scheduling phase of the block runs. It currently performs no work; it
// exists so the block driver can treat all runtime subsystems uniformly.
func (s *Scheduler) Initialize(_ types.BlockNumber) {}

// Finalize is called at the end of block execution. No scheduler work
// happens at finalization.
func (s *Scheduler) Finalize() {}

// State returns the scheduler's state for persistence. The returned value
// is the live state, not a copy; callers must not mutate it and must not
// retain it across scheduler calls. Use Snapshot for an owned copy.
func (s *Scheduler) State() *types.SchedulerState {
	return s.state
}

// Snapshot returns a deep copy of the scheduler's state, safe to read or
// persist concurrently with further scheduler calls.
func (s *Scheduler) Snapshot() *types.SchedulerState {
	return s.state.Clone()
}

// Scheduled returns the current assignment list: cores that are free but up
// to be occupied, strictly sorted ascending by core index. The value is not
// valid across block boundaries.
func (s *Scheduler) Scheduled() []types.CoreAssignment {
	return slices.Clone(s.state.Scheduled)
}

// AvailabilityCores returns the per-core occupancy vector. Entries with
// Kind CoreFree are unoccupied; they may still carry a Scheduled entry.
func (s *Scheduler) AvailabilityCores() []types.CoreOccupancy {
	return slices.Clone(s.state.AvailabilityCores)
}

// GroupValidators returns the validators in the given group. The second
// return value is false if the group index is not valid for this session.
// A valid group may be empty when there are more cores than validators.
func (s *Scheduler) GroupValidators(group types.GroupIndex) ([]types.ValidatorIndex, bool) {
	if int(group) >= len(s.state.ValidatorGroups) {
		return nil, false
	}

	return slices.Clone(s.state.ValidatorGroups[group]), true
}

// CoreWorkload returns the workload occupying the given core. The second
// return value is false for out-of-range indices and unoccupied cores.
func (s *Scheduler) CoreWorkload(core types.CoreIndex) (types.IndraID, bool) {
	if int(core) >= len(s.state.AvailabilityCores) {
		return 0, false
	}

	switch occ := s.state.AvailabilityCores[core]; occ.Kind {
	case types.CoreIndracore:
		indracores := s.registry.LiveIndracoreIDs()
		if int(core) >= len(indracores) {
			// Registry shrank mid-session; callers were warned.
			return 0, false
		}

		return indracores[core], true
	case types.CoreIndrabase:
		return occ.Entry.Claim.ID, true
	default:
		return 0, false
	}
}
