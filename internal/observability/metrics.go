// Package observability exposes sanctuary metrics through a Prometheus registry.
package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sanctuary/pkg/domain"
)

const namespace = "sanctuary"

// Metrics records the animal population, admissions and service operation outcomes.
type Metrics struct {
	registry   *prometheus.Registry
	population prometheus.GaugeFunc
	admissions *prometheus.CounterVec
	results    *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewMetrics builds the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		population: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "animal_population",
			Help:      "Animals constructed in this process.",
		}, func() float64 { return float64(domain.Population()) }),
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admissions_total",
			Help:      "Specimens admitted to the roster.",
		}, []string{"category"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Service operations by outcome.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 6),
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.population, m.admissions, m.results, m.durations)
	return m
}

// Registry returns the registry holding the sanctuary collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Admitted counts one admission in the given category.
func (m *Metrics) Admitted(category domain.Category) {
	m.admissions.WithLabelValues(string(category)).Inc()
}

// Observe records a service operation outcome.
func (m *Metrics) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	m.results.WithLabelValues(operation, status).Inc()
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}
