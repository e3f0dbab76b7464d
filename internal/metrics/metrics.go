package metrics

import "time"

// RecordCompile records one compile run with its duration.
func (r *Registry) RecordCompile(status string, duration time.Duration) {
	r.CompilesTotal.WithLabelValues(status).Inc()
	r.CompileDuration.Observe(duration.Seconds())
}

// RecordModule records a module network as generated or reused.
func (r *Registry) RecordModule(source string) {
	r.ModulesTotal.WithLabelValues(source).Inc()
}

func (r *Registry) RecordClassified(pattern string, n int) {
	if n > 0 {
		r.InteractionsClassified.WithLabelValues(pattern).Add(float64(n))
	}
}

func (r *Registry) RecordReaction(kind string) {
	r.ReactionsSynthesized.WithLabelValues(kind).Inc()
}

// RecordMapping records a resolved mapping; policy is "skipped" for non-port mappings.
func (r *Registry) RecordMapping(policy string) {
	r.MappingsResolved.WithLabelValues(policy).Inc()
}

func (r *Registry) RecordDiagnostic(severity, code string) {
	r.DiagnosticsTotal.WithLabelValues(severity, code).Inc()
}

func (r *Registry) RecordStoreOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.StoreOperationsTotal.WithLabelValues(operation, status).Inc()
}
