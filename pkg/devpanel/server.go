package devpanel

import (
	"encoding/json"
	stderrors "errors"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/minivdom/internal/errors"
	"github.com/vango-dev/minivdom/pkg/memdom"
	mw "github.com/vango-dev/minivdom/pkg/middleware"
	"github.com/vango-dev/minivdom/pkg/observe"
	"github.com/vango-dev/minivdom/pkg/render"
	"github.com/vango-dev/minivdom/pkg/vdom"
)

// Driver owns the state rendered into the panel's container.
type Driver interface {
	// Dispatch applies a named action and re-renders.
	Dispatch(action string) error

	// Trees returns the tree before the last render and the current tree.
	Trees() (previous, current *vdom.Node)
}

// Config configures the panel server.
type Config struct {
	// Driver receives actions. Required.
	Driver Driver

	// Actions are the action names shown as buttons.
	Actions []string

	// Container is the render target shown on the page. Required.
	Container *memdom.Node

	// Panel is the mutation log streamed to clients. Required.
	Panel *observe.Panel

	// Metrics serves /metrics when non-nil.
	Metrics http.Handler

	// MetricsRegistry receives HTTP request metrics when non-nil.
	MetricsRegistry prometheus.Registerer

	// MetricsNamespace prefixes the HTTP metric names (default "minivdom").
	MetricsNamespace string

	// Logger is used for request and websocket logs.
	// Default: slog.Default()
	Logger *slog.Logger
}

// Server is the dev panel HTTP server.
type Server struct {
	config   Config
	logger   *slog.Logger
	html     *render.Renderer
	upgrader websocket.Upgrader
	router   http.Handler

	// mu serializes renders: the driver and its target are not safe for
	// concurrent use.
	mu sync.Mutex
}

// New creates a Server. Request metrics, when configured, are registered
// here, so New must be called once per registry.
func New(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config: config,
		logger: logger,
		html:   render.NewRenderer(render.RendererConfig{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
	s.router = s.routes()
	return s
}

// Handler returns the panel's routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.OpenTelemetry())
	if s.config.MetricsRegistry != nil {
		r.Use(mw.Prometheus(
			mw.WithRegistry(s.config.MetricsRegistry),
			mw.WithNamespace(s.config.MetricsNamespace),
		))
	}
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/html", s.handleHTML)
		r.Get("/trees", s.handleTrees)
		r.Get("/log", s.handleLog)
		r.Post("/actions/{action}", s.handleAction)
	})
	r.Get("/ws", s.handleWebSocket)
	if s.config.Metrics != nil {
		r.Handle("/metrics", s.config.Metrics)
	}
	return r
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("devpanel: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) currentHTML() (string, error) {
	return s.html.InnerHTML(s.config.Container)
}

// locked runs fn while holding the render lock.
func (s *Server) locked(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

type pageData struct {
	Actions []string
	HTML    template.HTML
	Entries []observe.Entry
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var html string
	err := s.locked(func() (err error) {
		html, err = s.currentHTML()
		return err
	})
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageTemplate.Execute(w, pageData{
		Actions: s.config.Actions,
		// The renderer escapes all text and attribute values.
		HTML:    template.HTML(html),
		Entries: s.config.Panel.Entries(),
	})
	if err != nil {
		s.logger.Warn("devpanel: page render failed", "error", err)
	}
}

type htmlResponse struct {
	HTML string `json:"html"`
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	var html string
	err := s.locked(func() (err error) {
		html, err = s.currentHTML()
		return err
	})
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: html})
}

type treesResponse struct {
	Previous json.RawMessage `json:"previous"`
	Current  json.RawMessage `json:"current"`
}

func (s *Server) handleTrees(w http.ResponseWriter, r *http.Request) {
	var prevJSON, curJSON []byte
	err := s.locked(func() (err error) {
		prev, cur := s.config.Driver.Trees()
		if prevJSON, err = vdom.DumpJSON(prev); err != nil {
			return err
		}
		curJSON, err = vdom.DumpJSON(cur)
		return err
	})
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, treesResponse{Previous: prevJSON, Current: curJSON})
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.config.Panel.Entries())
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	var html string
	err := s.locked(func() (err error) {
		if err = s.config.Driver.Dispatch(action); err != nil {
			return err
		}
		html, err = s.currentHTML()
		return err
	})

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Code(err) == "E300" {
			status = http.StatusBadRequest
		}
		s.fail(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, htmlResponse{HTML: html})
}

// handleWebSocket streams panel entries until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	id, entries, cancel := s.config.Panel.Subscribe(0)
	defer cancel()
	s.logger.Debug("devpanel: subscriber connected", "id", id)

	// The read loop only detects disconnects
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	func() {
		for {
			select {
			case <-done:
				return
			case e, ok := <-entries:
				if !ok {
					return
				}
				if err := conn.WriteJSON(e); err != nil {
					return
				}
			}
		}
	}()

	conn.Close()
	<-done
	s.logger.Debug("devpanel: subscriber disconnected", "id", id)
}

type errorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code,omitempty"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: err.Error(), Code: errors.Code(err)}
	logged := err.Error()

	var coded *errors.Error
	if stderrors.As(err, &coded) {
		resp.Detail = json.RawMessage(coded.FormatJSON())
		logged = coded.FormatCompact()
	}
	s.logger.Warn("devpanel: request failed", "status", status, "error", logged)
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
