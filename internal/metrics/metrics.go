package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service exports. Collectors are
// registered on the Registerer passed to New, never the global default.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	SweepRuns      *prometheus.CounterVec
	SweepSkipped   *prometheus.CounterVec
	SweepCompleted prometheus.Counter
	SweepDuration  prometheus.Histogram

	NotificationsSent    *prometheus.CounterVec
	NotificationsDropped prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		SweepRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_sweeps_total",
				Help: "Total number of sweep cycles by result",
			},
			[]string{"result"},
		),
		SweepSkipped: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_sweeps_skipped_total",
				Help: "Sweep ticks skipped because another sweep held the lock",
			},
			[]string{"reason"},
		),
		SweepCompleted: f.NewCounter(
			prometheus.CounterOpts{
				Name: "interview_sweep_completed_total",
				Help: "Interviews auto-completed by the sweeper",
			},
		),
		SweepDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "interview_sweep_duration_seconds",
				Help:    "Duration of sweep cycles in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		NotificationsSent: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_sent_total",
				Help: "Notifications delivered by channel and result",
			},
			[]string{"channel", "result"},
		),
		NotificationsDropped: f.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_dropped_total",
				Help: "Notifications dropped because the queue was full",
			},
		),
	}
}

// NewNop registers on a throwaway registry, for tests and tools.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
