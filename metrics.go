package devwell

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devwell",
			Name:      "sessions_recorded_total",
			Help:      "Break sessions appended to the session log.",
		},
		[]string{"type", "completed"},
	)

	storageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devwell",
			Name:      "storage_failures_total",
			Help:      "Storage operations that failed and were swallowed.",
		},
		[]string{"op"},
	)
)
