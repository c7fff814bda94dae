package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ffkstats/ffkstats/internal/cache"
	"github.com/ffkstats/ffkstats/internal/config"
)

func newTestHandler(t *testing.T, upstream http.HandlerFunc, mutate func(*config.Config)) *Handler {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		FootballDataBaseURL: srv.URL,
		FootballDataAPIKey:  "secret-token",
		SportsDBBaseURL:     srv.URL,
	}
	if mutate != nil {
		mutate(cfg)
	}
	return New(cfg, cache.New(true))
}

func TestProxyFootballDataPassthrough(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teams/6956", r.URL.Path)
		require.Equal(t, "season=2025", r.URL.RawQuery)
		require.Equal(t, "secret-token", r.Header.Get("X-Auth-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 6956, "name": "Fredrikstad FK"}`))
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/teams/6956?season=2025", nil)
	rec := httptest.NewRecorder()
	h.ProxyFootballData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"id": 6956, "name": "Fredrikstad FK"}`, rec.Body.String())
}

func TestProxyForwardsUpstreamErrorsVerbatim(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "You reached your request limit.", "errorCode": 429}`))
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/competitions/TIP/standings", nil)
	rec := httptest.NewRecorder()
	h.ProxyFootballData(rec, req)

	// Upstream status and body survive untouched so the client can tell a
	// provider error from a proxy error.
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.JSONEq(t, `{"message": "You reached your request limit.", "errorCode": 429}`, rec.Body.String())
}

func TestProxySportsDBNoAuthHeader(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/json/3/searchteams.php", r.URL.Path)
		require.Empty(t, r.Header.Get("X-Auth-Token"))
		w.Write([]byte(`{"teams": null}`))
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sportsdb/api/v1/json/3/searchteams.php?t=Fredrikstad", nil)
	rec := httptest.NewRecorder()
	h.ProxySportsDB(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProxyNoAuthHeaderWhenKeyMissing(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Auth-Token"]
		require.False(t, present)
		w.Write([]byte(`{}`))
	}, func(cfg *config.Config) {
		cfg.FootballDataAPIKey = ""
	})

	req := httptest.NewRequest(http.MethodGet, "/api/teams/6956", nil)
	rec := httptest.NewRecorder()
	h.ProxyFootballData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProxyTransportFailure(t *testing.T) {
	// Point the relay at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	cfg := &config.Config{FootballDataBaseURL: deadURL}
	h := New(cfg, cache.New(false))

	req := httptest.NewRequest(http.MethodGet, "/api/teams/6956", nil)
	rec := httptest.NewRecorder()
	h.ProxyFootballData(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error": "No response received from API"}`, rec.Body.String())
}

func TestProxyImageRequiresURL(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {}, nil)

	req := httptest.NewRequest(http.MethodGet, "/proxy-image", nil)
	rec := httptest.NewRecorder()
	h.ProxyImage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error": "No image URL provided"}`, rec.Body.String())
}

func TestProxyImageCachesBytes(t *testing.T) {
	hits := 0
	imageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(imageSrv.Close)

	cfg := &config.Config{ImageCacheTTL: time.Minute}
	h := New(cfg, cache.New(true))

	fetch := func(etag string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/proxy-image?url="+url.QueryEscape(imageSrv.URL+"/badge.png"), nil)
		if etag != "" {
			req.Header.Set("If-None-Match", etag)
		}
		rec := httptest.NewRecorder()
		h.ProxyImage(rec, req)
		return rec
	}

	first := fetch("")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "image/png", first.Header().Get("Content-Type"))
	require.Equal(t, "png-bytes", first.Body.String())
	require.NotEmpty(t, first.Header().Get("ETag"))
	require.Equal(t, 1, hits)

	// Repeat view is served from cache.
	second := fetch("")
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "png-bytes", second.Body.String())
	require.Equal(t, 1, hits)

	// Conditional request short-circuits to 304.
	third := fetch(first.Header().Get("ETag"))
	require.Equal(t, http.StatusNotModified, third.Code)
	require.Empty(t, third.Body.String())
	require.Equal(t, 1, hits)
}

func TestProxyImageUpstreamFailure(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/proxy-image?url="+url.QueryEscape(h.cfg.SportsDBBaseURL+"/missing.png"), nil)
	rec := httptest.NewRecorder()
	h.ProxyImage(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to proxy image")
}

func TestContentTypeFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://x/badge.png", "image/png"},
		{"https://x/photo.JPG", "image/jpeg"},
		{"https://x/photo.jpeg", "image/jpeg"},
		{"https://x/anim.gif", "image/gif"},
		{"https://x/crest.svg", "image/svg+xml"},
		{"https://x/blob", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := contentTypeFromURL(tt.url); got != tt.want {
			t.Errorf("contentTypeFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
