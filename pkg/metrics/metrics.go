// Package metrics holds the Prometheus collectors a connection reports to.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "awsjson"

var operationLabels = []string{"service", "operation"}

// Metrics mirrors the per-request timings of the service clients:
// marshal time, client execute time and failures by error code.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	failuresTotal    *prometheus.CounterVec
	marshalDuration  *prometheus.HistogramVec
	executeDuration  *prometheus.HistogramVec
	responseBodySize *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg when reg is not nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_requests_total",
				Help:      "Total number of operations sent to a service.",
			},
			operationLabels,
		),
		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_request_failures_total",
				Help:      "Total number of failed operations by error code.",
			},
			append(append([]string{}, operationLabels...), "code"),
		),
		marshalDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_marshal_duration_seconds",
				Help:      "Time spent encoding request records.",
				Buckets:   []float64{.00001, .0001, .001, .01, .1},
			},
			operationLabels,
		),
		executeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "client_execute_duration_seconds",
				Help:      "Time from starting an operation until its result is decoded.",
				Buckets:   prometheus.DefBuckets,
			},
			operationLabels,
		),
		responseBodySize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "response_body_bytes",
				Help:      "Size of response bodies.",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
			},
			operationLabels,
		),
	}
	if reg != nil {
		reg.MustRegister(
			m.requestsTotal,
			m.failuresTotal,
			m.marshalDuration,
			m.executeDuration,
			m.responseBodySize,
		)
	}
	return m
}

func (m *Metrics) ObserveRequest(service, operation string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(service, operation).Inc()
}

func (m *Metrics) ObserveFailure(service, operation, code string) {
	if m == nil {
		return
	}
	m.failuresTotal.WithLabelValues(service, operation, code).Inc()
}

func (m *Metrics) ObserveMarshal(service, operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.marshalDuration.WithLabelValues(service, operation).Observe(d.Seconds())
}

func (m *Metrics) ObserveExecute(service, operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.executeDuration.WithLabelValues(service, operation).Observe(d.Seconds())
}

func (m *Metrics) ObserveResponseSize(service, operation string, n int) {
	if m == nil {
		return
	}
	m.responseBodySize.WithLabelValues(service, operation).Observe(float64(n))
}
