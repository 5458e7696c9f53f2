package observe

import (
	"context"
	"log/slog"

	"github.com/vango-dev/minivdom/pkg/vdom"
)

// LogSink writes every mutation to a slog.Logger.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink creates a LogSink logging at debug level. A nil logger uses
// slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the sink logging at level.
func (s *LogSink) WithLevel(level slog.Level) *LogSink {
	return &LogSink{logger: s.logger, level: level}
}

// Observe implements Sink.
func (s *LogSink) Observe(m Mutation) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, s.level) {
		return
	}
	attrs := []slog.Attr{
		slog.Uint64("seq", m.Seq),
		slog.String("op", m.Op.String()),
		slog.String("target", m.Target),
	}
	if m.Parent != "" {
		attrs = append(attrs, slog.String("parent", m.Parent))
	}
	if m.Anchor != "" {
		attrs = append(attrs, slog.String("anchor", m.Anchor))
	}
	if m.Name != "" {
		attrs = append(attrs, slog.String("name", m.Name))
	}
	switch m.Op {
	case vdom.OpCreateText, vdom.OpSetText, vdom.OpSetAttribute:
		attrs = append(attrs, slog.String("value", m.Value))
	}
	s.logger.LogAttrs(ctx, s.level, "vdom mutation", attrs...)
}
