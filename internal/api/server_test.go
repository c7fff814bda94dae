package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ffkstats/ffkstats/internal/cache"
	"github.com/ffkstats/ffkstats/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		CORSAllowOrigins: []string{"http://localhost:5173"},
	}
}

func TestRouterHealth(t *testing.T) {
	r := NewRouter(testConfig(), cache.New(true))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body["status"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/cache", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterRootInfo(t *testing.T) {
	r := NewRouter(testConfig(), cache.New(false))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "running", body["status"])
}

func TestTimingHeaderPresent(t *testing.T) {
	r := NewRouter(testConfig(), cache.New(false))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NotEmpty(t, rec.Header().Get("X-Process-Time"))
}

func TestRateLimitMiddleware(t *testing.T) {
	// Four requests per minute, burst two: the third immediate request
	// from the same IP must be rejected.
	mw := RateLimitMiddleware(4, time.Minute)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doReq := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, doReq("10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, doReq("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, doReq("10.0.0.1:1234"))

	// Other clients have their own bucket.
	require.Equal(t, http.StatusOK, doReq("10.0.0.2:1234"))
}

func TestCORSHeaders(t *testing.T) {
	r := NewRouter(testConfig(), cache.New(false))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
