// Package metrics expone los colectores Prometheus del servicio.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una operación.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics agrupa los colectores registrados en un registry propio (no el global).
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	wsClients  prometheus.GaugeFunc
}

// New crea y registra los colectores. clients, si no es nil, alimenta el gauge de clientes websocket.
func New(clients func() int) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventory",
			Name:      "graphql_operations_total",
			Help:      "Operaciones GraphQL ejecutadas por nombre y resultado.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inventory",
			Name:      "graphql_operation_duration_seconds",
			Help:      "Duración de las operaciones GraphQL.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.operations,
		m.duration,
	)
	if clients != nil {
		m.wsClients = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "inventory",
			Name:      "ws_clients",
			Help:      "Dashboards conectados al feed de cambios.",
		}, func() float64 { return float64(clients()) })
		reg.MustRegister(m.wsClients)
	}
	return m
}

// ObserveOperation registra una operación GraphQL terminada.
func (m *Metrics) ObserveOperation(operation string, failed bool, elapsed time.Duration) {
	outcome := OutcomeOK
	if failed {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler devuelve el handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry acceso al registry (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
