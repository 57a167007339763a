package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Run paths, used as the "path" label.
const (
	PathSeries = "series"
	PathFrame  = "frame"
	PathVec    = "vec"
	PathMat    = "mat"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	indicatorRuns      *prometheus.CounterVec
	indicatorDuration  *prometheus.HistogramVec
	indicatorUndefined *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry(namespace string) *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		indicatorRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "indicator_runs_total",
				Help:      "Total number of indicator runs",
			},
			[]string{"indicator", "path"},
		),

		indicatorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "indicator_run_duration_seconds",
				Help:      "Indicator run duration in seconds",
				Buckets:   []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"indicator", "path"},
		),

		indicatorUndefined: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "indicator_undefined_values_total",
				Help:      "Total number of NaN values produced by indicators",
			},
			[]string{"indicator"},
		),
	}

	reg.MustRegister(r.indicatorRuns)
	reg.MustRegister(r.indicatorDuration)
	reg.MustRegister(r.indicatorUndefined)

	return r
}

// RecordRun records a completed indicator run.
func (r *Registry) RecordRun(indicator, path string, duration float64) {
	r.indicatorRuns.WithLabelValues(indicator, path).Inc()
	r.indicatorDuration.WithLabelValues(indicator, path).Observe(duration)
}

// RecordUndefined adds n undefined output values for an indicator.
func (r *Registry) RecordUndefined(indicator string, n int) {
	if n <= 0 {
		return
	}
	r.indicatorUndefined.WithLabelValues(indicator).Add(float64(n))
}
