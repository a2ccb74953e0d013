package mcp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts MCP requests served. Each server owns its registry so
// tests can create servers freely.
type Metrics struct {
	registry      *prometheus.Registry
	toolCalls     *prometheus.CounterVec
	resourceReads *prometheus.CounterVec
}

// NewMetrics creates the request counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seva",
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "Number of MCP tool calls by tool and outcome.",
		}, []string{"tool", "outcome"}),
		resourceReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seva",
			Subsystem: "mcp",
			Name:      "resource_reads_total",
			Help:      "Number of MCP resource reads by resource and outcome.",
		}, []string{"resource", "outcome"}),
	}
	m.registry.MustRegister(m.toolCalls, m.resourceReads)
	return m
}

// ObserveTool records one tool call.
func (m *Metrics) ObserveTool(tool string, err error) {
	m.toolCalls.WithLabelValues(tool, outcome(err)).Inc()
}

// ObserveResource records one resource read.
func (m *Metrics) ObserveResource(resource string, err error) {
	m.resourceReads.WithLabelValues(resource, outcome(err)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
