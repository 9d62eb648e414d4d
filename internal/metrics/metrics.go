package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path.
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edu_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "edu_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed.
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "edu_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// AttemptsStarted counts quiz attempts opened, by test.
	AttemptsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edu_quiz_attempts_started_total",
			Help: "Total number of quiz attempts started",
		},
		[]string{"test_id"},
	)

	// AttemptsFinished counts quiz attempts finished, by test.
	AttemptsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edu_quiz_attempts_finished_total",
			Help: "Total number of quiz attempts finished",
		},
		[]string{"test_id"},
	)

	// AttemptScores observes final attempt scores as percentages.
	AttemptScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "edu_quiz_attempt_score_percent",
			Help:    "Distribution of final quiz attempt scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	// MaterialsCompleted counts materials marked as completed.
	MaterialsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "edu_materials_completed_total",
			Help: "Total number of material completions recorded",
		},
	)
)
