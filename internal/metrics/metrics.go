// Package metrics counts what a batch run loaded, skipped and reported.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private Prometheus registry for one process.
type Recorder struct {
	registry *prometheus.Registry

	loaded  *prometheus.CounterVec
	skipped *prometheus.CounterVec
	entries *prometheus.CounterVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentsplit_records_loaded_total",
			Help: "Input rows accepted into the catalog.",
		}, []string{"table"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentsplit_records_skipped_total",
			Help: "Input rows dropped during validation.",
		}, []string{"table", "reason"}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentsplit_report_entries_total",
			Help: "Entries written to reports.",
		}, []string{"level"}),
	}
	r.registry.MustRegister(r.loaded, r.skipped, r.entries)
	return r
}

// Loaded adds n accepted rows for table.
func (r *Recorder) Loaded(table string, n int) {
	r.loaded.WithLabelValues(table).Add(float64(n))
}

// Skipped counts one dropped row.
func (r *Recorder) Skipped(table, reason string) {
	r.skipped.WithLabelValues(table, reason).Inc()
}

// Reported adds n report entries for level.
func (r *Recorder) Reported(level string, n int) {
	r.entries.WithLabelValues(level).Add(float64(n))
}

// Registry exposes the underlying registry, e.g. for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric in the Prometheus text format to path,
// for pickup by a node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
