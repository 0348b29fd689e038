package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// authAttemptsTotal counts bearer authentication attempts by result.
var authAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Total bearer authentication attempts by result",
	},
	[]string{"result"}, // result: success | failure
)

// RecordAuthAttempt records one authentication attempt.
func RecordAuthAttempt(result string) {
	authAttemptsTotal.WithLabelValues(result).Inc()
}
