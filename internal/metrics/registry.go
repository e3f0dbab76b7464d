// Package metrics exposes compile counters on a private Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Registry struct {
	registry *prometheus.Registry

	CompilesTotal          *prometheus.CounterVec
	CompileDuration        prometheus.Histogram
	ModulesTotal           *prometheus.CounterVec
	InteractionsClassified *prometheus.CounterVec
	ReactionsSynthesized   *prometheus.CounterVec
	MappingsResolved       *prometheus.CounterVec
	DiagnosticsTotal       *prometheus.CounterVec
	StoreOperationsTotal   *prometheus.CounterVec
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{registry: reg}
	r.initCompileMetrics()
	return r
}

func (r *Registry) initCompileMetrics() {
	r.CompilesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_compiles_total",
			Help: "Total number of compile runs by outcome",
		},
		[]string{"status"},
	)

	r.CompileDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gcsynth_compile_duration_seconds",
			Help:    "Compile run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
	)

	r.ModulesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_modules_total",
			Help: "Module networks by source (generated or reused)",
		},
		[]string{"source"},
	)

	r.InteractionsClassified = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_interactions_classified_total",
			Help: "Interactions by classified pattern",
		},
		[]string{"pattern"},
	)

	r.ReactionsSynthesized = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_reactions_synthesized_total",
			Help: "Generated reactions by kind",
		},
		[]string{"kind"},
	)

	r.MappingsResolved = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_mappings_total",
			Help: "Submodule mappings by applied policy",
		},
		[]string{"policy"},
	)

	r.DiagnosticsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_diagnostics_total",
			Help: "Compile diagnostics by severity and code",
		},
		[]string{"severity", "code"},
	)

	r.StoreOperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsynth_store_operations_total",
			Help: "Network store operations by operation and status",
		},
		[]string{"operation", "status"},
	)
}

// GetPrometheusRegistry returns the underlying registry for the /metrics handler.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
