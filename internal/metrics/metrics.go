// Package metrics provides Prometheus metrics for Herald.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Linker outcome label values
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
	OutcomeInvalid   = "invalid"
)

var (
	// LinkerRecordsTotal tracks broadcast records evaluated by outcome
	LinkerRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "herald",
			Subsystem: "linker",
			Name:      "records_total",
			Help:      "Total number of broadcast records evaluated by outcome",
		},
		[]string{"sport", "outcome"},
	)

	// LinkerMatchScore tracks the total score of accepted matches
	LinkerMatchScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "herald",
			Subsystem: "linker",
			Name:      "match_score",
			Help:      "Total score of accepted broadcast-to-fixture matches",
			Buckets:   []float64{70, 75, 80, 85, 90, 95, 100},
		},
		[]string{"sport"},
	)

	// WriterRowsTotal tracks broadcast rows handed to the writer by result
	WriterRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "herald",
			Subsystem: "writer",
			Name:      "rows_total",
			Help:      "Total number of broadcast rows by write result",
		},
		[]string{"sport", "result"},
	)

	// SchedulerRunDuration tracks one sport/day link run in seconds
	SchedulerRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "herald",
			Subsystem: "scheduler",
			Name:      "run_duration_seconds",
			Help:      "Duration of one sport/day link run in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"sport"},
	)

	// SchedulerRunErrorsTotal tracks failed sport/day runs
	SchedulerRunErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "herald",
			Subsystem: "scheduler",
			Name:      "run_errors_total",
			Help:      "Total number of failed sport/day link runs",
		},
		[]string{"sport"},
	)

	// ProviderRequestsTotal tracks outbound schedule provider requests
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "herald",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of schedule provider requests",
		},
		[]string{"endpoint", "status_code"},
	)

	// FixturesStatusUpdatesTotal tracks fixture status transitions
	FixturesStatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "herald",
			Subsystem: "status",
			Name:      "updates_total",
			Help:      "Total number of fixture status transitions",
		},
		[]string{"status"},
	)
)
