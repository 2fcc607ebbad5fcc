package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AlertsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alertgate_alerts_stored_total",
		Help: "Alerts persisted, by detection mode.",
	}, []string{"mode"})

	InjectionsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alertgate_injections_detected_total",
		Help: "Signature matcher hits, by signature label.",
	}, []string{"label"})

	ClassificationsSafe = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alertgate_classifications_safe_total",
		Help: "Detection calls that matched no signature.",
	})

	StorageFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alertgate_storage_failures_total",
		Help: "Alert writes rejected by the database or the circuit breaker.",
	})
)
