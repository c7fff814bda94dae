// Package handler provides HTTP handlers for the proxy relay. The relay
// holds no state between requests beyond the image cache: every data
// request is a single best-effort upstream attempt whose status code and
// body pass through verbatim — retries and fallbacks belong to the
// normalization layer, not here.
package handler

import (
	"net/http"
	"time"

	"github.com/ffkstats/ffkstats/internal/api/respond"
	"github.com/ffkstats/ffkstats/internal/cache"
	"github.com/ffkstats/ffkstats/internal/config"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	cfg        *config.Config
	cache      *cache.Cache
	httpClient *http.Client
}

// New creates a Handler with shared dependencies.
func New(cfg *config.Config, c *cache.Cache) *Handler {
	return &Handler{
		cfg:   cfg,
		cache: c,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns service name, version, and the proxied providers.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "FFKStats Proxy",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"upstreams": []string{
			"football-data.org",
			"thesportsdb.com",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns image cache statistics.
// @Summary Cache health check
// @Description Returns in-memory image cache statistics.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
