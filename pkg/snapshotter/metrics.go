package snapshotter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "buildtarget_snapshot_duration_seconds",
			Help:    "Time taken to capture a build target snapshot",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	snapshotTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buildtarget_snapshot_total",
			Help: "Total number of snapshot attempts",
		},
		[]string{"status"}, // success or error
	)

	snapshotUnrecognizedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buildtarget_snapshot_unrecognized_total",
			Help: "Values reported by the orchestrator that are not named variants",
		},
		[]string{"field"},
	)
)
