package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons used as the "reason" label.
const (
	ReasonInvalidJSON        = "invalid_json"
	ReasonInvalidWorkoutType = "invalid_workout_type"
	ReasonInvalidDuration    = "invalid_duration"
	ReasonInvalidIntensity   = "invalid_intensity"
	ReasonNotFound           = "not_found"
	ReasonInternal           = "internal_error"
)

var (
	excusesGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "excuse_service",
		Subsystem: "api",
		Name:      "excuses_generated_total",
		Help:      "Number of excuses handed out, by workout type and intensity.",
	}, []string{"workout_type", "intensity"})

	requestsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "excuse_service",
		Subsystem: "api",
		Name:      "requests_rejected_total",
		Help:      "Number of requests answered with an error body, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(excusesGenerated, requestsRejected)
}

// RecordExcuseGenerated counts a successful generate-excuse response.
func RecordExcuseGenerated(workoutType, intensity string) {
	excusesGenerated.WithLabelValues(workoutType, intensity).Inc()
}

// RecordRequestRejected counts an error response.
func RecordRequestRejected(reason string) {
	requestsRejected.WithLabelValues(reason).Inc()
}

// ExcusesGenerated exposes the counter for tests and diagnostics.
func ExcusesGenerated(workoutType, intensity string) prometheus.Counter {
	return excusesGenerated.WithLabelValues(workoutType, intensity)
}

// RequestsRejected exposes the counter for tests and diagnostics.
func RequestsRejected(reason string) prometheus.Counter {
	return requestsRejected.WithLabelValues(reason)
}
