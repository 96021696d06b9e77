package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	t.Run(`учет HTTP запросов`, func(t *testing.T) {
		m := NewManager()
		m.RecordHTTPRequest("GET", "/api/v1/jobs", 200, 10*time.Millisecond)
		m.RecordHTTPRequest("GET", "/api/v1/jobs", 200, 20*time.Millisecond)
		m.RecordHTTPRequest("POST", "/api/v1/jobs", 422, time.Millisecond)

		require.Equal(t, float64(2), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/jobs", "200")))
		require.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/v1/jobs", "422")))
	})
	t.Run(`отдельные реестры не конфликтуют`, func(t *testing.T) {
		require.NotPanics(t, func() {
			NewManager()
			NewManager(WithNamespace("other"))
		})
	})
	t.Run(`экспозиция`, func(t *testing.T) {
		m := NewManager()
		m.RecordHTTPRequest("GET", "/api/v1/skills", 200, time.Millisecond)
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `job_board_http_requests_total{method="GET",route="/api/v1/skills",status="200"} 1`)
	})
}
