package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "qiita_mcp"

// Collectors groups the metrics exported by the server.
type Collectors struct {
	ToolInvocations *prometheus.CounterVec
	ToolDuration    *prometheus.HistogramVec
	APIRequests     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		ToolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_invocations_total",
			Help:      "Number of tool invocations by tool and outcome.",
		}, []string{"tool", "outcome"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_duration_seconds",
			Help:      "Tool invocation latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Number of requests sent to the Qiita API by method and status code.",
		}, []string{"method", "code"}),
	}

	if reg != nil {
		reg.MustRegister(c.ToolInvocations, c.ToolDuration, c.APIRequests)
	}
	return c
}

// NewRegistry returns a registry with the Go and process collectors plus ours.
func NewRegistry() (*prometheus.Registry, *Collectors) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, New(reg)
}
