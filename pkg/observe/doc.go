// Package observe mirrors render-target mutations to diagnostic sinks.
//
// Wrap decorates any vdom.Host so that every primitive call is forwarded
// unchanged and then reported to each Sink as a Mutation. The engine does
// not know about the decorator and behaves identically without it.
//
// # Sinks
//
//   - Recorder keeps every mutation in memory (tests, CLI summaries)
//   - LogSink writes each mutation to a slog.Logger at debug level
//   - Panel keeps a bounded, newest-first log and fans entries out to
//     subscribers (the dev panel's websocket stream)
//   - Metrics counts mutations per primitive in Prometheus
//
// # Usage
//
//	rec := observe.NewRecorder()
//	host := observe.Wrap(memdom.New(), rec, observe.NewLogSink(logger))
//	r := vdom.NewRenderer(host)
package observe
