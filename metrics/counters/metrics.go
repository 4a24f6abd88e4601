package counters

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var callCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "emip",
	Name:      "call_count",
	Help:      "Total number of platform calls by operation and status code.",
}, []string{"operation", "status"})

var callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "emip",
	Name:      "call_duration_seconds",
	Help:      "Platform call round-trip time.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation"})

var callErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "emip",
	Name:      "call_error_count",
	Help:      "Total number of calls ending with an error status.",
}, []string{"operation", "status"})

var authorisationGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "emip",
	Name:      "authorisations_accepted",
	Help:      "Last authorisation verdict per EVSE, 1 accepted 0 rejected.",
}, []string{"evse_id"})

func CountCall(operation, status string) {
	if len(operation) == 0 || len(status) == 0 {
		return
	}
	callCounter.With(prometheus.Labels{"operation": operation, "status": status}).Inc()
}

func ObserveCallDuration(operation string, seconds float64) {
	if len(operation) == 0 {
		return
	}
	callDuration.With(prometheus.Labels{"operation": operation}).Observe(seconds)
}

func CountCallError(operation, status string) {
	if len(operation) == 0 || len(status) == 0 {
		return
	}
	callErrors.With(prometheus.Labels{"operation": operation, "status": status}).Inc()
}

func ObserveAuthorisation(evseId string, accepted bool) {
	if len(evseId) == 0 {
		return
	}
	value := 0.0
	if accepted {
		value = 1.0
	}
	authorisationGauge.With(prometheus.Labels{"evse_id": evseId}).Set(value)
}
