package coresched

import "github.com/indranet/coresched/types"

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	strategy types.GroupStrategy
	hooks    *types.Hooks
	metrics  types.MetricsCollector
	logger   types.Logger
	state    *types.SchedulerState
}

// WithGroupStrategy sets a custom validator group strategy.
//
// The default is partition.NewBalanced(). Custom strategies must satisfy
// the determinism and balance requirements documented on
// types.GroupStrategy; an unbalanced or nondeterministic strategy is a
// chain-safety bug, not a tuning knob.
//
// Parameters:
//   - strategy: GroupStrategy implementation
//
// Returns:
//   - Option: Functional option for New
func WithGroupStrategy(strategy types.GroupStrategy) Option {
	return func(o *schedulerOptions) {
		o.strategy = strategy
	}
}

// WithHooks sets scheduler event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &coresched.Hooks{
//	    OnClaimDropped: func(id coresched.IndraID, reason string) error {
//	        return notifyCollator(id, reason)
//	    },
//	}
//	sched, err := coresched.New(reg, coresched.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *schedulerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
func WithLogger(logger types.Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithState restores the scheduler from a previously persisted state
// snapshot instead of starting from the genesis (empty) state.
//
// Parameters:
//   - state: Snapshot loaded from a store.StateStore
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	state, err := st.Load(ctx)
//	if err != nil { /* handle */ }
//	sched, err := coresched.New(reg, coresched.WithState(state))
func WithState(state *types.SchedulerState) Option {
	return func(o *schedulerOptions) {
		o.state = state
	}
}
