package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus sink.
type MetricsConfig struct {
	Namespace   string                // default "minivdom"
	Subsystem   string                // default ""
	ConstLabels prometheus.Labels     // added to every series
	Registry    prometheus.Registerer // default prometheus.DefaultRegisterer
}

// MetricsOption configures the Prometheus sink.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace. An empty namespace keeps the
// default.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		if namespace != "" {
			c.Namespace = namespace
		}
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

// WithConstLabels adds labels to every series.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithRegistry sets the registry the counters are registered with.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

// Metrics counts mutations per primitive.
type Metrics struct {
	mutations *prometheus.CounterVec
	renders   prometheus.Counter
}

// NewMetrics registers the mutation counters. It panics if the metrics are
// already registered with the chosen registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{Namespace: "minivdom", Registry: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mutations_total",
			Help:        "Total number of render-target primitive calls",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Observe implements Sink.
func (m *Metrics) Observe(mu Mutation) {
	m.mutations.WithLabelValues(mu.Op.String()).Inc()
}

// RenderDone counts a completed render pass.
func (m *Metrics) RenderDone() {
	m.renders.Inc()
}
