package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecordHTTPRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordHTTPRequest(http.MethodGet, "/movies", http.StatusOK, 20*time.Millisecond)
	m.RecordHTTPRequest(http.MethodGet, "/movies", http.StatusOK, 30*time.Millisecond)
	m.RecordHTTPRequest(http.MethodGet, "unmatched", http.StatusNotFound, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `movies_api_http_requests_total{method="GET",route="/movies",status_code="200"} 2`)
	assert.Contains(t, body, `movies_api_http_requests_total{method="GET",route="unmatched",status_code="404"} 1`)
	assert.Contains(t, body, `movies_api_http_request_duration_seconds_count{method="GET",route="/movies"} 2`)
}

func TestRecordPreflight(t *testing.T) {
	m := NewMetrics()

	m.RecordPreflight(true)
	m.RecordPreflight(true)
	m.RecordPreflight(false)

	body := scrape(t, m)
	assert.Contains(t, body, `movies_api_cors_preflights_total{outcome="allowed"} 2`)
	assert.Contains(t, body, `movies_api_cors_preflights_total{outcome="rejected"} 1`)
}

func TestGauges(t *testing.T) {
	m := NewMetrics()

	m.SetMountedRoutes("movies", 5)
	m.SetMoviesStored(3)
	m.SetMoviesStored(2)

	body := scrape(t, m)
	assert.Contains(t, body, `movies_api_mounted_routes{group="movies"} 5`)
	assert.Contains(t, body, "movies_api_movies_stored 2")
}

func TestInstancesAreIsolated(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()

	a.RecordPreflight(true)

	assert.Contains(t, scrape(t, a), `outcome="allowed"`)
	assert.NotContains(t, scrape(t, b), `outcome="allowed"`)
	assert.NotSame(t, a.Registry(), b.Registry())
}
