package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/movies-api/internal/logger"
	"github.com/MKhiriev/movies-api/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h := &Handler{logger: logger.Nop(), metrics: metrics.NewMetrics()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))

	rec := httptest.NewRecorder()
	h.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `movies_api_http_requests_total{method="GET",route="/movies/{id}",status_code="200"} 3`)
	assert.Contains(t, body, `movies_api_http_requests_total{method="GET",route="unmatched",status_code="404"} 1`)
	assert.NotContains(t, body, `route="/movies/a"`)
}
