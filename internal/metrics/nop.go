// Package metrics provides MetricsCollector implementations used by the
// library: a nop default and a Prometheus-backed collector.
package metrics

import "github.com/indranet/coresched/types"

// NopMetrics implements types.MetricsCollector by discarding everything.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a metrics collector that records nothing. It is the default
// when no metrics option is provided.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSessionChange discards the observation.
func (*NopMetrics) RecordSessionChange(int, int, int) {}

// RecordClaimAccepted discards the observation.
func (*NopMetrics) RecordClaimAccepted() {}

// RecordClaimRejected discards the observation.
func (*NopMetrics) RecordClaimRejected(string) {}

// RecordClaimDropped discards the observation.
func (*NopMetrics) RecordClaimDropped(string) {}

// RecordClaimQueueLength discards the observation.
func (*NopMetrics) RecordClaimQueueLength(int) {}

// RecordScheduledCores discards the observation.
func (*NopMetrics) RecordScheduledCores(int) {}

// RecordFreedCores discards the observation.
func (*NopMetrics) RecordFreedCores(types.FreedReason, int) {}

// RecordOccupiedCores discards the observation.
func (*NopMetrics) RecordOccupiedCores(int) {}
