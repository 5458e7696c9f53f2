package vdom

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/minivdom/internal/errors"
)

// defaultTracerName is the tracer used when none is configured.
const defaultTracerName = "minivdom"

// Renderer reconciles node trees into a Host.
type Renderer struct {
	host     Host
	roots    *Registry
	logger   *slog.Logger
	tracer   trace.Tracer
	validate bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRegistry sets the registry holding each target's last tree.
// Renderers sharing a registry share target state.
func WithRegistry(reg *Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.roots = reg
		}
	}
}

// WithLogger sets the logger. Render begin and end are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the tracer used for render spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Renderer) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithValidation enables or disables tree validation before each render.
// Validation is on by default; disabling it trusts the caller's trees.
func WithValidation(enabled bool) Option {
	return func(r *Renderer) {
		r.validate = enabled
	}
}

// NewRenderer creates a Renderer for host.
func NewRenderer(host Host, opts ...Option) *Renderer {
	r := &Renderer{
		host:     host,
		roots:    NewRegistry(),
		logger:   slog.Default(),
		tracer:   otel.Tracer(defaultTracerName),
		validate: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Host returns the host the renderer writes to.
func (r *Renderer) Host() Host { return r.host }

// Registry returns the registry holding each target's last tree.
func (r *Renderer) Registry() *Registry { return r.roots }

// Render reconciles next into target. See RenderContext.
func (r *Renderer) Render(next *Node, target Handle) error {
	return r.RenderContext(context.Background(), next, target)
}

// RenderContext reconciles next into target against the tree rendered into
// target last time. A nil next clears the target. The new tree, even when
// nil, becomes the target's remembered tree.
//
// Nodes of the previous tree must not be reused once this returns.
func (r *Renderer) RenderContext(ctx context.Context, next *Node, target Handle) (err error) {
	if target == nil {
		return errors.New("E201")
	}

	prev := r.roots.Get(target)
	mode := renderMode(prev, next)

	_, span := r.tracer.Start(ctx, "vdom.Render", trace.WithAttributes(
		attribute.String("vdom.mode", mode),
		attribute.String("vdom.target", targetLabel(target)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if r.validate && next != nil {
		if err := Validate(next); err != nil {
			r.logger.Debug("vdom: invalid tree", "error", err)
			return err
		}
	}

	r.logger.Debug("vdom: render", "mode", mode)

	if next != nil {
		if err := r.patch(prev, next, target, nil); err != nil {
			return err
		}
	} else if prev != nil {
		r.host.SetText(target, "")
	}

	r.roots.Set(target, next)
	return nil
}

// targetLabel identifies a target in span attributes. Pointer handles print
// as their address, anything else by value.
func targetLabel(target Handle) string {
	if reflect.ValueOf(target).Kind() == reflect.Pointer {
		return fmt.Sprintf("%p", target)
	}
	return fmt.Sprintf("%v", target)
}

// renderMode names what a render call will do.
func renderMode(prev, next *Node) string {
	switch {
	case next == nil && prev == nil:
		return "noop"
	case next == nil:
		return "clear"
	case prev == nil:
		return "mount"
	default:
		return "patch"
	}
}
