package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation Coach API outcomes.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finz_coach",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Coach API requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "finz_coach",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Coach API round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.latency)
	}
	return m
}

func (m *Metrics) observe(op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(op).Observe(time.Since(started).Seconds())
	m.requests.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isUnavailable(err):
		return "unavailable"
	case isUnauthorized(err):
		return "unauthorized"
	default:
		return "error"
	}
}
