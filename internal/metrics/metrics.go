package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every SafeStay collector; it is served on the metrics port.
var Registry = prometheus.NewRegistry()

var (
	httpRequestsTotal = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "safestay_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "safestay_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	bookingTransitions = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "safestay_booking_transitions_total",
		Help: "Booking status changes by source status, target status and result",
	}, []string{"from", "to", "result"})

	bookingConflicts = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "safestay_booking_overlap_conflicts_total",
		Help: "Booking requests rejected because the dates were already held",
	})

	auditDropped = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Name: "safestay_audit_events_dropped_total",
		Help: "Audit events dropped because the queue was full",
	})
)

func init() {
	Registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveTransition counts one attempted status change. result is "ok" or
// the failure kind.
func ObserveTransition(from, to, result string) {
	bookingTransitions.WithLabelValues(from, to, result).Inc()
}

func ObserveOverlapConflict() {
	bookingConflicts.Inc()
}

func ObserveAuditDropped() {
	auditDropped.Inc()
}
