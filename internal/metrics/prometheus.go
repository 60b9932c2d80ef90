// Package metrics provides Prometheus-based metrics recording for document writes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records document store metrics.
type Recorder struct {
	appendedTotal  *prometheus.CounterVec
	appendDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder registering its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		appendedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_appended_total",
				Help: "Total number of document append attempts by collection and status",
			},
			[]string{"collection", "status"},
		),
		appendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "documents_append_duration_seconds",
				Help:    "Duration of document appends in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collection"},
		),
	}
}

// ObserveAppend records the outcome of one append.
func (r *Recorder) ObserveAppend(collection string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}

	r.appendedTotal.WithLabelValues(collection, status).Inc()
	r.appendDuration.WithLabelValues(collection).Observe(duration.Seconds())
}
