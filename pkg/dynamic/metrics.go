package dynamic

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for dynamic rendering.
type dynamicMetrics struct {
	renders   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inFlight  prometheus.Gauge
	cacheHits prometheus.Counter
}

// Registered once on the default registerer; all clients share them.
var (
	globalMetrics     *dynamicMetrics
	globalMetricsOnce sync.Once
)

func getMetrics() *dynamicMetrics {
	globalMetricsOnce.Do(func() {
		factory := promauto.With(prometheus.DefaultRegisterer)

		globalMetrics = &dynamicMetrics{
			renders: factory.NewCounterVec(prometheus.CounterOpts{
				Namespace: "quill",
				Subsystem: "dynamic",
				Name:      "renders_total",
				Help:      "Total number of dynamic render calls by template and status",
			}, []string{"template", "status"}),

			duration: factory.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "quill",
				Subsystem: "dynamic",
				Name:      "render_duration_seconds",
				Help:      "Dynamic render call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			}, []string{"template"}),

			inFlight: factory.NewGauge(prometheus.GaugeOpts{
				Namespace: "quill",
				Subsystem: "dynamic",
				Name:      "children_in_flight",
				Help:      "Number of render child processes currently alive",
			}),

			cacheHits: factory.NewCounter(prometheus.CounterOpts{
				Namespace: "quill",
				Subsystem: "dynamic",
				Name:      "cache_hits_total",
				Help:      "Dynamic render calls served from the render cache",
			}),
		}
	})
	return globalMetrics
}

// Metric status label values.
const (
	statusSuccess    = "success"
	statusSpawnError = "spawn_error"
	statusChildError = "child_error"
	statusTimeout    = "timeout"
	statusCancelled  = "cancelled"
	statusIOError    = "io_error"
)
