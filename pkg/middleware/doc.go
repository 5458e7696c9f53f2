// Package middleware provides HTTP observability middleware for the dev
// panel: OpenTelemetry request spans and Prometheus request metrics.
//
// Both middlewares follow the func(http.Handler) http.Handler shape and
// work with chi, where they label requests by route pattern rather than
// raw path:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//
// # Tracing
//
// The tracer comes from the global OpenTelemetry provider. Configure it in
// main() before serving; without a provider spans are no-ops.
//
// # Metrics
//
//   - minivdom_http_requests_total: requests by route, method and status
//   - minivdom_http_request_duration_seconds: request latency by route
package middleware
