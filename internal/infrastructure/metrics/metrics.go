package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"eventdesk/internal/ports/output"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventdesk_upstream_requests_total",
			Help: "Backend API requests by endpoint and status",
		},
		[]string{"method", "endpoint", "status"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventdesk_upstream_request_duration_seconds",
			Help:    "Backend API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	detailsSlotFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventdesk_details_slot_failures_total",
			Help: "Participant details slots that degraded to empty",
		},
		[]string{"slot"},
	)

	detailsCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventdesk_details_cache_total",
			Help: "Participant details cache lookups",
		},
		[]string{"result"},
	)

	chatPolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventdesk_chat_polls_total",
			Help: "Chat polls by outcome",
		},
		[]string{"result"},
	)
)

var (
	_ output.Metrics         = Recorder{}
	_ output.UpstreamMetrics = Recorder{}
)

// Recorder implements the metrics ports on the package collectors.
type Recorder struct{}

func (Recorder) UpstreamObserved(method, endpoint, status string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(method, endpoint, status).Inc()
	upstreamDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

func (Recorder) DetailsSlotFailed(slot string) {
	detailsSlotFailures.WithLabelValues(slot).Inc()
}

func (Recorder) DetailsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	detailsCache.WithLabelValues(result).Inc()
}

func (Recorder) ChatPolled(result string) {
	chatPolls.WithLabelValues(result).Inc()
}
