package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels recorded per upstream call.
const (
	ResultOK             = "ok"
	ResultTransportError = "transport_error"
	ResultBadStatus      = "bad_status"
	ResultTooLarge       = "too_large"
)

// Recorder receives one observation per upstream call.
type Recorder interface {
	ObserveRequest(upstream, result string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string, string, time.Duration) {}

// Metrics is a Prometheus-backed Recorder.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the upstream collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weardict",
			Name:      "upstream_requests_total",
			Help:      "Upstream lookup calls by upstream and result.",
		}, []string{"upstream", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weardict",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream lookup call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// ObserveRequest implements Recorder.
func (m *Metrics) ObserveRequest(upstream, result string, elapsed time.Duration) {
	m.requests.WithLabelValues(upstream, result).Inc()
	m.duration.WithLabelValues(upstream).Observe(elapsed.Seconds())
}
