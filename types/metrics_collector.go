package types

// Claim rejection and drop reasons reported to the MetricsCollector and
// Hooks.
const (
	// ReasonNotLive rejects a claim whose workload is not a live
	// indrabase.
	ReasonNotLive = "not_live"

	// ReasonQueueFull rejects a claim submitted against a full queue.
	ReasonQueueFull = "queue_full"

	// ReasonDuplicate rejects a claim competing with an outstanding one.
	ReasonDuplicate = "duplicate"

	// ReasonRetryLimit drops a claim whose retries exceeded the limit.
	ReasonRetryLimit = "retry_limit"

	// ReasonDeregistered drops a claim whose workload was deregistered.
	ReasonDeregistered = "deregistered"

	// ReasonNoMultiplexerCores drops all claims when a session configures
	// zero indrabase cores.
	ReasonNoMultiplexerCores = "no_multiplexer_cores"
)

// MetricsCollector defines methods for recording scheduler metrics.
//
// Implementations must be non-blocking and must never influence scheduling
// decisions: metrics are observational, the state machine stays a pure
// function of chain state.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	SessionMetrics
	ClaimMetrics
	ScheduleMetrics
}

// SessionMetrics defines metrics recorded at session boundaries.
type SessionMetrics interface {
	// RecordSessionChange records the shape of the new session.
	//
	// Parameters:
	//   - cores: Number of availability cores
	//   - validators: Size of the active validator set
	//   - queued: Claims surviving the session-change prune
	RecordSessionChange(cores, validators, queued int)
}

// ClaimMetrics defines metrics for indrabase claim handling.
type ClaimMetrics interface {
	// RecordClaimAccepted records a claim entering the queue.
	RecordClaimAccepted()

	// RecordClaimRejected records a claim rejected at submission.
	//
	// Parameters:
	//   - reason: One of the Reason* constants
	RecordClaimRejected(reason string)

	// RecordClaimDropped records a previously accepted claim being
	// retired without conclusion.
	//
	// Parameters:
	//   - reason: One of the Reason* constants
	RecordClaimDropped(reason string)

	// RecordClaimQueueLength sets the current claim queue length (gauge).
	RecordClaimQueueLength(length int)
}

// ScheduleMetrics defines metrics for the per-block core protocol.
type ScheduleMetrics interface {
	// RecordScheduledCores records how many new assignments one Schedule
	// call produced.
	RecordScheduledCores(count int)

	// RecordFreedCores records cores freed in one FreeCores call, by
	// reason.
	RecordFreedCores(reason FreedReason, count int)

	// RecordOccupiedCores records assignments moved into occupancy by one
	// Occupied call.
	RecordOccupiedCores(count int)
}
