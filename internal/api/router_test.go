package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	_ "autohuis/backoffice-leads/docs"
	"autohuis/backoffice-leads/internal/api/controllers"
	"autohuis/backoffice-leads/internal/api/middleware"
	"autohuis/backoffice-leads/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// emptyStore is a LeadStore with no leads
type emptyStore struct{}

func (emptyStore) ListLeads(filter dto.LeadFilter) ([]dto.Lead, int64, error) {
	return []dto.Lead{}, 0, nil
}

func (emptyStore) GetLead(id string) (*dto.Lead, error) {
	return &dto.Lead{ID: id}, nil
}

// newParseOnlyRouter builds the router as main does without Supabase
func newParseOnlyRouter() *gin.Engine {
	return NewRouter(controllers.NewLeadsController(nil, 10), nil, nil)
}

// newFullRouter builds the router as main does with a store
func newFullRouter(limiter *middleware.RateLimiter) *gin.Engine {
	store := emptyStore{}
	return NewRouter(
		controllers.NewLeadsController(store, 10),
		controllers.NewReportsController(store),
		limiter,
	)
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthCheck tests the /health endpoint
func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		router   *gin.Engine
		database string
	}{
		{"without store", newParseOnlyRouter(), "disabled"},
		{"with store", newFullRouter(nil), "enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.router, http.MethodGet, "/health", "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var response map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "ok", response["status"])
			assert.Equal(t, tt.database, response["database"])
		})
	}
}

// TestHealthCheck_DifferentMethods tests health endpoint with different HTTP methods
func TestHealthCheck_DifferentMethods(t *testing.T) {
	router := newParseOnlyRouter()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			w := serve(router, method, "/health", "")
			assert.True(t, w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed,
				"Expected 404 or 405 for method %s, got %d", method, w.Code)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newParseOnlyRouter()

	w := serve(router, http.MethodGet, "/health", "")

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsRoute(t *testing.T) {
	router := newParseOnlyRouter()

	// Generate at least one parse so the lead counters have a sample
	serve(router, http.MethodPost, "/api/v1/leads/parse", `{"source": "website"}`)

	w := serve(router, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), "leads_parsed_total")
}

// TestSwaggerRoute tests that the Swagger UI and the registered spec are served
func TestSwaggerRoute(t *testing.T) {
	router := newParseOnlyRouter()

	w := serve(router, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/leads/parse")
}

func TestParseRoute_Exists(t *testing.T) {
	router := newParseOnlyRouter()

	w := serve(router, http.MethodPost, "/api/v1/leads/parse", `{"notes": "* Jan Jansen * 0612345678"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var response dto.LeadDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Jan Jansen", response.Parsed.CustomerName)
}

func TestParseBatchRoute_Exists(t *testing.T) {
	router := newParseOnlyRouter()

	w := serve(router, http.MethodPost, "/api/v1/leads/parse/batch", `[{"source": "marktplaats"}]`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseRoute_RateLimited(t *testing.T) {
	router := newFullRouter(middleware.NewRateLimiter(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := serve(router, http.MethodPost, "/api/v1/leads/parse", `{}`)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Lookups are not rate limited
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/leads", "").Code)
}

func serveFrom(router http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/parse", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestParseRoute_RateLimitIgnoresForwardedFor(t *testing.T) {
	router := NewRouter(controllers.NewLeadsController(nil, 10), nil, middleware.NewRateLimiter(0.001, 1))

	codes := make([]int, 0, 5)
	for i := 1; i <= 5; i++ {
		codes = append(codes, serveFrom(router, "203.0.113.7:4000", fmt.Sprintf("198.51.100.%d", i)))
	}

	assert.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestParseRoute_TrustedProxyForwardsClientIP(t *testing.T) {
	router := NewRouter(controllers.NewLeadsController(nil, 10), nil, middleware.NewRateLimiter(0.001, 1))
	require.NoError(t, router.SetTrustedProxies([]string{"203.0.113.7"}))

	assert.Equal(t, http.StatusOK, serveFrom(router, "203.0.113.7:4000", "198.51.100.1"))
	assert.Equal(t, http.StatusOK, serveFrom(router, "203.0.113.7:4000", "198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(router, "203.0.113.7:4000", "198.51.100.1"))
}

// TestStoreRoutes tests that lookup and report routes depend on the store
func TestStoreRoutes(t *testing.T) {
	paths := []string{
		"/api/v1/leads",
		"/api/v1/leads/5f1c2a8e-3c7b-4b7e-9a59-0c1b2d3e4f50",
		"/api/v1/reports/leads",
	}

	t.Run("registered with store", func(t *testing.T) {
		router := newFullRouter(nil)
		for _, path := range paths {
			assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, path, "").Code, path)
		}
	})

	t.Run("absent without store", func(t *testing.T) {
		router := newParseOnlyRouter()
		for _, path := range paths {
			assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, path, "").Code, path)
		}
	})
}

// TestParseRoute_MethodNotAllowed tests that only POST is allowed on the parse route
func TestParseRoute_MethodNotAllowed(t *testing.T) {
	router := newParseOnlyRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			w := serve(router, method, "/api/v1/leads/parse", "")
			assert.True(t, w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed,
				"Expected 404 or 405 for method %s, got %d", method, w.Code)
		})
	}
}

// TestNotFoundRoute tests that non-existent routes return 404
func TestNotFoundRoute(t *testing.T) {
	router := newFullRouter(nil)

	for _, route := range []string{"/nonexistent", "/api/v1/nonexistent", "/api/v2/leads", "/leads"} {
		t.Run(route, func(t *testing.T) {
			w := serve(router, http.MethodGet, route, "")
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	router := newParseOnlyRouter()
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(router, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseRoute_BadJSON(t *testing.T) {
	router := newParseOnlyRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/parse", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
