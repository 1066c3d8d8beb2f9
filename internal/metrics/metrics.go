// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service counters. A nil *Metrics records nothing.
type Metrics struct {
	Evaluations  *prometheus.CounterVec
	Generations  *prometheus.CounterVec
	HTTPRequests *prometheus.CounterVec
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passmeter_evaluations_total",
				Help: "Total number of strength checks by resulting band",
			},
			[]string{"band"},
		),
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passmeter_generations_total",
				Help: "Total number of generated passwords by mode",
			},
			[]string{"mode"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passmeter_http_requests_total",
				Help: "Total number of HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
	}

	reg.MustRegister(m.Evaluations, m.Generations, m.HTTPRequests)

	return m
}

// NewRegistry returns a registry with the Go and process collectors plus the service counters.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg, New(reg)
}

// ObserveEvaluation counts one strength check.
func (m *Metrics) ObserveEvaluation(band string) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(band).Inc()
}

// ObserveGeneration counts one generated password.
func (m *Metrics) ObserveGeneration(mode string) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(mode).Inc()
}

// ObserveRequest counts one HTTP response.
func (m *Metrics) ObserveRequest(method string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
