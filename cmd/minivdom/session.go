package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vango-dev/minivdom/internal/config"
	"github.com/vango-dev/minivdom/internal/demo"
	"github.com/vango-dev/minivdom/pkg/memdom"
	"github.com/vango-dev/minivdom/pkg/observe"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

// session wires a demo app to an observed in-memory render target.
type session struct {
	container *memdom.Node
	recorder  *observe.Recorder // nil unless recording was requested
	panel     *observe.Panel
	renderer  *vdom.Renderer
	app       *demo.App

	// registry is nil unless metrics are enabled.
	registry *prometheus.Registry
}

// newSession builds the demo session. A recorder keeps every mutation for
// the life of the session, so only short runs should ask for one.
func newSession(cfg *config.Config, logger *slog.Logger, record bool) *session {
	doc := memdom.New()
	s := &session{
		container: doc.CreateContainer("div"),
		panel:     observe.NewPanel(cfg.Panel.MaxEntries),
	}

	host := observe.Wrap(doc, s.panel, observe.NewLogSink(logger))
	if record {
		s.recorder = observe.NewRecorder()
		host.AddSink(s.recorder)
	}

	var hook func()
	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := observe.NewMetrics(
			observe.WithNamespace(cfg.Metrics.Namespace),
			observe.WithRegistry(s.registry),
		)
		host.AddSink(metrics)
		hook = metrics.RenderDone
	}

	s.renderer = vdom.NewRenderer(host,
		vdom.WithLogger(logger),
		vdom.WithValidation(cfg.ValidateTrees()),
	)
	s.app = demo.New(s.renderer, s.container,
		demo.WithPanel(s.panel),
		demo.WithLogger(logger),
		demo.WithRenderHook(hook),
	)
	return s
}

// run mounts the app and applies actions in order.
func (s *session) run(actions []string) error {
	if err := s.app.Mount(); err != nil {
		return err
	}
	for _, action := range actions {
		if err := s.app.Dispatch(action); err != nil {
			return err
		}
	}
	return nil
}
