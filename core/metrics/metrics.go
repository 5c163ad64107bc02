package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// Recorder counts widget conversions. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	lookups     *prometheus.CounterVec
}

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()

	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toolbox",
		Name:      "conversions_total",
		Help:      "Widget edits processed, by widget, operation and outcome.",
	}, []string{"widget", "operation", "outcome"})

	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toolbox",
		Name:      "host_lookups_total",
		Help:      "Host environment queries, by capability and result.",
	}, []string{"capability", "result"})

	reg.MustRegister(
		conversions,
		lookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Recorder{registry: reg, conversions: conversions, lookups: lookups}
}

// Observe counts one widget edit. ok=false means the input was rejected.
func (r *Recorder) Observe(widget, operation string, ok bool) {
	if r == nil {
		return
	}
	outcome := OutcomeApplied
	if !ok {
		outcome = OutcomeRejected
	}
	r.conversions.WithLabelValues(widget, operation, outcome).Inc()
}

// ObserveLookup counts one host query (ip, clock, entropy).
func (r *Recorder) ObserveLookup(capability string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.lookups.WithLabelValues(capability, result).Inc()
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
