package sysctl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settingsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunectl_settings_applied_total",
			Help: "Total number of kernel tunables written successfully",
		},
	)

	settingsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tunectl_settings_skipped_total",
			Help: "Total number of settings skipped by the prefix whitelist",
		},
	)

	writeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunectl_write_failures_total",
			Help: "Total number of failed tunable writes",
		},
		[]string{"class"}, // benign or fatal
	)
)

// WriteMetricsTextfile dumps the process's metrics to path in the
// node_exporter textfile-collector format, the exposition channel for
// one-shot jobs. The file is written atomically.
func WriteMetricsTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
