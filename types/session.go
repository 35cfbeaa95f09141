package types

// SessionConfig is the scheduler-relevant slice of the host configuration,
// snapshotted at each session boundary. It is on-chain state delivered via
// SessionChangeNotification, not a locally loaded config file.
type SessionConfig struct {
	// IndrabaseCores is the number of availability cores multiplexed
	// between indrabase workloads, on top of one dedicated core per
	// indracore.
	IndrabaseCores uint32 `json:"indrabaseCores"`

	// GroupRotationFrequency is how many blocks a validator group serves
	// one core before all bindings shift by one.
	GroupRotationFrequency BlockNumber `json:"groupRotationFrequency"`

	// IndracoreAvailabilityPeriod is how many blocks an indracore
	// candidate may stay pending availability before timing out.
	IndracoreAvailabilityPeriod BlockNumber `json:"indracoreAvailabilityPeriod"`

	// IndrabaseAvailabilityPeriod is the indrabase equivalent of
	// IndracoreAvailabilityPeriod. The two may differ.
	IndrabaseAvailabilityPeriod BlockNumber `json:"indrabaseAvailabilityPeriod"`

	// SchedulingLookahead bounds the claim queue at
	// IndrabaseCores * SchedulingLookahead entries.
	SchedulingLookahead uint32 `json:"schedulingLookahead"`

	// IndrabaseRetryLimit is the maximum retry count a claim may reach
	// before it is dropped instead of re-queued.
	IndrabaseRetryLimit uint32 `json:"indrabaseRetryLimit"`

	// MaxValidatorsPerCore optionally forces extra cores so that no group
	// exceeds this many validators. Zero means unset.
	MaxValidatorsPerCore uint32 `json:"maxValidatorsPerCore,omitempty"`
}

// Sanitize returns a copy of the config with degenerate values clamped so
// that scheduling math stays well defined, logging a warning for each
// adjustment. A zero rotation frequency would divide by zero in the rotation
// clock, so it is clamped to 1 (rotate every block).
//
// Anything else degenerate (zero cores, zero lookahead) is safe as-is: it
// schedules nothing rather than misbehaving.
func (c SessionConfig) Sanitize(logger Logger) SessionConfig {
	if c.GroupRotationFrequency == 0 {
		logger.Warn("group rotation frequency of 0 clamped to 1")
		c.GroupRotationFrequency = 1
	}

	return c
}

// SessionChangeNotification carries everything the scheduler needs to
// rebuild cores and validator groups at a session boundary. It is delivered
// exactly once per session transition, before the first block of the new
// session runs scheduler logic.
type SessionChangeNotification struct {
	// Validators is the session's active validator list, already shuffled
	// upstream. Groups are built from indices into this list.
	Validators []ValidatorIndex

	// NewConfig is the configuration snapshot for the new session.
	NewConfig SessionConfig

	// AtBlock is the block in which the session change was signaled. The
	// change takes effect at the next block, which becomes the rotation
	// epoch origin.
	AtBlock BlockNumber
}
