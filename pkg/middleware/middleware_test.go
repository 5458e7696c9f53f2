package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func router(mw ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(mw...)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("item " + chi.URLParam(r, "id")))
	})
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPrometheusLabelsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := router(Prometheus(WithRegistry(reg), WithNamespace("test")))

	serve(h, "/items/1")
	serve(h, "/items/2")
	serve(h, "/fail")

	expected := `
# HELP test_http_requests_total Dev panel requests by route, method and status.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/fail",status="500"} 1
test_http_requests_total{method="GET",route="/items/{id}",status="200"} 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"); err != nil {
		t.Error(err)
	}
	if n := testutil.CollectAndCount(reg, "test_http_request_duration_seconds"); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestPrometheusOutsideChi(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := Prometheus(WithRegistry(reg), WithSubsystem("raw"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serve(h, "/plain")

	expected := `
# HELP minivdom_raw_requests_total Dev panel requests by route, method and status.
# TYPE minivdom_raw_requests_total counter
minivdom_raw_requests_total{method="GET",route="/plain",status="200"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "minivdom_raw_requests_total"); err != nil {
		t.Error(err)
	}
}

func TestOpenTelemetryPassesThrough(t *testing.T) {
	extracted := 0
	h := router(OpenTelemetry(
		withTracer(noop.NewTracerProvider().Tracer("test")),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			extracted++
			return []attribute.KeyValue{attribute.String("test", "yes")}
		}),
	))

	rec := serve(h, "/items/7")
	if rec.Code != http.StatusOK || rec.Body.String() != "item 7" {
		t.Errorf("response = %d %q", rec.Code, rec.Body.String())
	}
	if rec := serve(h, "/fail"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if extracted != 2 {
		t.Errorf("extractor ran %d times, want 2", extracted)
	}
}

func TestOpenTelemetryFilter(t *testing.T) {
	extracted := 0
	h := router(OpenTelemetry(
		WithTracerName("filtered"),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/fail" }),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			extracted++
			return nil
		}),
	))

	serve(h, "/fail")
	serve(h, "/items/1")
	if extracted != 1 {
		t.Errorf("extractor ran %d times, want 1", extracted)
	}
}

func TestRoutePatternFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x/y", nil)
	if got := routePattern(r); got != "/x/y" {
		t.Errorf("routePattern() = %q", got)
	}
}
