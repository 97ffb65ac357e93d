// Package metrics counts render passes for the engine. Each Collector owns its
// registry so independent engines and tests never collide on registration.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Pass outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Collector holds the render metrics.
type Collector struct {
	registry *prometheus.Registry

	Passes    *prometheus.CounterVec
	Failures  *prometheus.CounterVec
	Fallbacks *prometheus.CounterVec
	Nodes     prometheus.Histogram
	Duration  prometheus.Histogram
	Reloads   prometheus.Counter
}

// NewCollector creates a collector whose metric names carry namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	passes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Render passes by outcome",
		},
		[]string{"outcome"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_failures_total",
			Help:      "Fatal render errors by kind",
		},
		[]string{"kind"},
	)

	fallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "style_fallbacks_total",
			Help:      "Style attributes that fell back to a theme or engine default",
		},
		[]string{"attribute"},
	)

	nodes := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_nodes",
			Help:      "Number of instructions produced per successful pass",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render pass duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	reloads := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_reloads_total",
			Help:      "Theme context swaps",
		},
	)

	registry.MustRegister(passes, failures, fallbacks, nodes, duration, reloads)

	return &Collector{
		registry:  registry,
		Passes:    passes,
		Failures:  failures,
		Fallbacks: fallbacks,
		Nodes:     nodes,
		Duration:  duration,
		Reloads:   reloads,
	}
}

// Registry exposes the underlying registry for gathering.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// ObservePass records a completed pass. fallbacks lists the attribute names
// of absorbed style fallbacks; only the attribute suffix is used as a label
// so node ids never become label values.
func (c *Collector) ObservePass(elapsed time.Duration, nodes int, fallbacks []string) {
	if c == nil {
		return
	}
	c.Passes.WithLabelValues(OutcomeOK).Inc()
	c.Duration.Observe(elapsed.Seconds())
	c.Nodes.Observe(float64(nodes))
	for _, attr := range fallbacks {
		c.Fallbacks.WithLabelValues(attr).Inc()
	}
}

// ObserveFailure records a pass that produced no output. outcome is
// OutcomeRejected for load-time errors and OutcomeFailed for render errors.
func (c *Collector) ObserveFailure(outcome, kind string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Passes.WithLabelValues(outcome).Inc()
	c.Failures.WithLabelValues(kind).Inc()
	c.Duration.Observe(elapsed.Seconds())
}

// ObserveThemeReload counts a theme swap.
func (c *Collector) ObserveThemeReload() {
	if c == nil {
		return
	}
	c.Reloads.Inc()
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
