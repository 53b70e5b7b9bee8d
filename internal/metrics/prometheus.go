// Package metrics provides Prometheus metrics for operator runs.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zoobzio/marbles"
)

// Manager records statistics of monitored operator runs. Its Observe
// method is meant to be handed to marbles.NewMonitor.
type Manager struct {
	registry         *prometheus.Registry
	namespace        string
	subsystem        string
	histogramBuckets []float64

	runs         *prometheus.CounterVec
	skips        *prometheus.CounterVec
	terminations *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	outputSize   *prometheus.HistogramVec
}

// NewManager creates a metrics manager on its own registry unless
// WithRegistry says otherwise.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		registry:         prometheus.NewRegistry(),
		namespace:        "marbles",
		subsystem:        "operator",
		histogramBuckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of operator runs, applied or skipped",
	}, []string{"operator"})

	m.skips = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skips_total",
		Help:      "Total number of runs where the operator did not apply to its inputs",
	}, []string{"operator"})

	m.terminations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "terminations_total",
		Help:      "Output terminations by kind",
	}, []string{"operator", "kind"})

	m.runDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_seconds",
		Help:      "Time spent validating and applying an operator",
		Buckets:   m.histogramBuckets,
	}, []string{"operator"})

	m.outputSize = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "output_marbles",
		Help:      "Number of values in operator outputs",
		Buckets:   prometheus.LinearBuckets(0, 2, 8),
	}, []string{"operator"})
}

// Observe records one run.
func (m *Manager) Observe(stats marbles.RunStats) {
	op := stats.Expression
	m.runs.WithLabelValues(op).Inc()
	m.runDuration.WithLabelValues(op).Observe(stats.Duration.Seconds())

	if stats.Err != nil {
		m.skips.WithLabelValues(op).Inc()
		return
	}
	m.outputSize.WithLabelValues(op).Observe(float64(stats.Marbles))
	m.terminations.WithLabelValues(op, stats.Terminal.Kind().String()).Inc()
}

// Registry returns the registry holding the metrics.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the metrics in the Prometheus text format, for the
// node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
