package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	EventSkipped    = "skipped"
	EventStale      = "stale"
	EventDispatched = "dispatched"
)

var (
	// PushEvents counts update events by how the pipeline handled them.
	PushEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notice_push_events_total",
			Help: "Number of notice update events handled by the push pipeline",
		},
		[]string{"result"},
	)

	// PushDeliveries counts dispatch attempts by terminal status.
	PushDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notice_push_deliveries_total",
			Help: "Number of push dispatch attempts by outcome",
		},
		[]string{"status"},
	)

	PushRecordErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notice_push_record_errors_total",
			Help: "Number of dispatch outcomes that could not be written back to the notice",
		},
	)

	PushDispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notice_push_dispatch_duration_seconds",
			Help:    "Duration of calls to the push delivery provider",
			Buckets: prometheus.DefBuckets,
		},
	)

	// StaleRequests is the number of notices stuck with push_requested set, as seen by the last audit.
	StaleRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notice_push_stale_requests",
			Help: "Notices whose push request has not been processed within the audit threshold",
		},
	)
)

func Init() {
	prometheus.MustRegister(PushEvents, PushDeliveries, PushRecordErrors, PushDispatchDuration, StaleRequests)
}
