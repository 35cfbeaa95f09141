package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/indranet/coresched/types"
)

// PrometheusCollector implements types.MetricsCollector backed by
// Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	sessionCores      prometheus.Gauge
	sessionValidators prometheus.Gauge

	claimsAccepted prometheus.Counter
	claimsRejected *prometheus.CounterVec
	claimsDropped  *prometheus.CounterVec
	queueLength    prometheus.Gauge

	scheduledCores prometheus.Counter
	freedCores     *prometheus.CounterVec
	occupiedCores  prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements
// MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "coresched" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using
//     Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "coresched"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.sessionCores = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "session",
			Name:      "availability_cores",
			Help:      "Number of availability cores in the current session.",
		})

		p.sessionValidators = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "session",
			Name:      "active_validators",
			Help:      "Size of the current session's active validator set.",
		})

		p.claimsAccepted = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "claims",
			Name:      "accepted_total",
			Help:      "Total indrabase claims accepted into the queue.",
		})

		p.claimsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "claims",
			Name:      "rejected_total",
			Help:      "Total indrabase claims rejected at submission, by reason.",
		}, []string{"reason"})

		p.claimsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "claims",
			Name:      "dropped_total",
			Help:      "Total accepted claims retired without conclusion, by reason.",
		}, []string{"reason"})

		p.queueLength = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "claims",
			Name:      "queue_length",
			Help:      "Current indrabase claim queue length.",
		})

		p.scheduledCores = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "scheduled_cores_total",
			Help:      "Total core assignments produced by Schedule.",
		})

		p.freedCores = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "freed_cores_total",
			Help:      "Total cores freed, by reason.",
		}, []string{"reason"})

		p.occupiedCores = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "occupied_cores_total",
			Help:      "Total assignments moved into core occupancy.",
		})

		p.reg.MustRegister(
			p.sessionCores, p.sessionValidators,
			p.claimsAccepted, p.claimsRejected, p.claimsDropped, p.queueLength,
			p.scheduledCores, p.freedCores, p.occupiedCores,
		)
	})
}

// RecordSessionChange records the shape of the new session.
func (p *PrometheusCollector) RecordSessionChange(cores, validators, queued int) {
	p.ensureRegistered()
	p.sessionCores.Set(float64(cores))
	p.sessionValidators.Set(float64(validators))
	p.queueLength.Set(float64(queued))
}

// RecordClaimAccepted records a claim entering the queue.
func (p *PrometheusCollector) RecordClaimAccepted() {
	p.ensureRegistered()
	p.claimsAccepted.Inc()
}

// RecordClaimRejected records a claim rejected at submission.
func (p *PrometheusCollector) RecordClaimRejected(reason string) {
	p.ensureRegistered()
	p.claimsRejected.WithLabelValues(reason).Inc()
}

// RecordClaimDropped records an accepted claim retired without conclusion.
func (p *PrometheusCollector) RecordClaimDropped(reason string) {
	p.ensureRegistered()
	p.claimsDropped.WithLabelValues(reason).Inc()
}

// RecordClaimQueueLength sets the current claim queue length.
func (p *PrometheusCollector) RecordClaimQueueLength(length int) {
	p.ensureRegistered()
	p.queueLength.Set(float64(length))
}

// RecordScheduledCores records assignments produced by one Schedule call.
func (p *PrometheusCollector) RecordScheduledCores(count int) {
	p.ensureRegistered()
	p.scheduledCores.Add(float64(count))
}

// RecordFreedCores records cores freed in one FreeCores call, by reason.
func (p *PrometheusCollector) RecordFreedCores(reason types.FreedReason, count int) {
	p.ensureRegistered()
	p.freedCores.WithLabelValues(reason.String()).Add(float64(count))
}

// RecordOccupiedCores records assignments moved into occupancy.
func (p *PrometheusCollector) RecordOccupiedCores(count int) {
	p.ensureRegistered()
	p.occupiedCores.Add(float64(count))
}
